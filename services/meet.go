package services

import (
	"fmt"
	"math/rand"
	"os"
	"strings"

	"github.com/alphabatem/common/context"
	log "github.com/sirupsen/logrus"

	"github.com/skyward-academy/curricula_api/shared"
)

// MeetService generates Google Meet links for live class items. Link
// generation is gated on the operator's account having a connected
// meeting account; without one the editor falls back to a manually
// pasted link.
type MeetService struct {
	context.DefaultService
	userSvc *AuthService
	domain  string
}

const MEET_SVC = "meet_svc"

func (svc MeetService) Id() string {
	return MEET_SVC
}

func (svc *MeetService) Configure(ctx *context.Context) error {
	svc.domain = os.Getenv("MEET_DOMAIN")
	if svc.domain == "" {
		svc.domain = "meet.google.com"
	}
	return svc.DefaultService.Configure(ctx)
}

func (svc *MeetService) Start() error {
	svc.userSvc = svc.Service(AUTH_SVC).(*AuthService)
	return nil
}

// Connected reports whether the user can generate links at all.
func (svc *MeetService) Connected(userID string) (bool, error) {
	user, err := svc.userSvc.GetUser(userID)
	if err != nil {
		return false, err
	}
	return user.MeetAccount != "", nil
}

// GenerateLink creates a meeting link for a scheduled live class.
func (svc *MeetService) GenerateLink(userID, title, date, timeOfDay string) (string, error) {
	connected, err := svc.Connected(userID)
	if err != nil {
		return "", err
	}
	if !connected {
		return "", shared.NewForbiddenError(nil, "No meeting account connected. Paste a meeting link instead.")
	}

	link := fmt.Sprintf("https://%s/%s", svc.domain, meetCode())
	log.Printf("Generated meet link for %q on %s %s", title, date, timeOfDay)
	return link, nil
}

// meetCode builds a xxx-yyyy-zzz meeting code.
func meetCode() string {
	const letters = "abcdefghijklmnopqrstuvwxyz"
	part := func(n int) string {
		var b strings.Builder
		for i := 0; i < n; i++ {
			b.WriteByte(letters[rand.Intn(len(letters))])
		}
		return b.String()
	}
	return fmt.Sprintf("%s-%s-%s", part(3), part(4), part(3))
}
