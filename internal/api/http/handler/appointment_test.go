package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"

	"github.com/muchiri-dev/dermacare_backend/internal/service/appointment"
)

func TestMapAppointmentError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"unknown appointment", appointment.ErrNotFound, fiber.StatusNotFound},
		{"unknown appointment type", appointment.ErrAppointmentTypeNotFound, fiber.StatusNotFound},
		{"slot taken", appointment.ErrTimeSlotTaken, fiber.StatusConflict},
		{"bad transition", appointment.ErrInvalidTransition, fiber.StatusConflict},
		{"doctor on leave", appointment.ErrDoctorOnLeave, fiber.StatusUnprocessableEntity},
		{"cancellation window closed", appointment.ErrCancellationWindowClosed, fiber.StatusUnprocessableEntity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/", func(c fiber.Ctx) error {
				return mapAppointmentError(c, tt.err)
			})

			resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
			if err != nil {
				t.Fatalf("app.Test: %v", err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != tt.want {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.want)
			}
		})
	}
}
