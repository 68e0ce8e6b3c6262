package service

import (
	"github.com/rs/zerolog"

	"github.com/connectpro/marketplace-api/internal/core/ports"
)

func testLogger() zerolog.Logger {
	return zerolog.Nop()
}

type stubEventSink struct {
	events []ports.BookingEventInput
}

func (s *stubEventSink) Enqueue(event ports.BookingEventInput) {
	s.events = append(s.events, event)
}
