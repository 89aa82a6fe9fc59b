package handlers

import (
	"bufio"
	"encoding/json"
	"fmt"
	"log"
	"time"

	apperrors "officedesk/internal/errors"
	"officedesk/internal/models"
	"officedesk/internal/services/attendance"
	"officedesk/internal/services/employee"
	"officedesk/internal/utils"
	"officedesk/internal/utils/response"

	"github.com/gofiber/fiber/v2"
	"github.com/valyala/fasthttp"
)

// HeartbeatInterval keeps idle live streams open through proxies.
const HeartbeatInterval = 15 * time.Second

type AttendanceHandler struct {
	attendanceService attendance.Service
	employeeService   employee.Service
}

func NewAttendanceHandler(attendanceService attendance.Service, employeeService employee.Service) *AttendanceHandler {
	return &AttendanceHandler{
		attendanceService: attendanceService,
		employeeService:   employeeService,
	}
}

func (h *AttendanceHandler) ClockIn(c *fiber.Ctx) error {
	claims, err := utils.GetUserClaims(c)
	if err != nil {
		return response.Unauthorized(c)
	}

	snap, err := h.attendanceService.ClockIn(c.UserContext(), claims.UserID)
	if err != nil {
		return response.FromError(c, err)
	}
	return response.Success(c, "Clocked in", snap)
}

func (h *AttendanceHandler) ClockOut(c *fiber.Ctx) error {
	claims, err := utils.GetUserClaims(c)
	if err != nil {
		return response.Unauthorized(c)
	}

	snap, err := h.attendanceService.ClockOut(c.UserContext(), claims.UserID)
	if err != nil {
		return response.FromError(c, err)
	}
	return response.Success(c, "Clocked out", snap)
}

func (h *AttendanceHandler) Today(c *fiber.Ctx) error {
	claims, err := utils.GetUserClaims(c)
	if err != nil {
		return response.Unauthorized(c)
	}

	snap, err := h.attendanceService.Today(c.UserContext(), claims.UserID)
	if err != nil {
		return response.FromError(c, err)
	}
	return response.Success(c, "Attendance retrieved", snap)
}

// Live streams server-sent events: a snapshot first, then one tick per
// second while the caller is clocked in.
func (h *AttendanceHandler) Live(c *fiber.Ctx) error {
	claims, err := utils.GetUserClaims(c)
	if err != nil {
		return response.Unauthorized(c)
	}

	snap, err := h.attendanceService.Today(c.UserContext(), claims.UserID)
	if err != nil {
		return response.FromError(c, err)
	}
	ticks, cancel, err := h.attendanceService.Subscribe(c.UserContext(), claims.UserID)
	if err != nil {
		return response.FromError(c, err)
	}

	c.Set("Content-Type", "text/event-stream")
	c.Set("Cache-Control", "no-cache")
	c.Set("Connection", "keep-alive")
	c.Set("X-Accel-Buffering", "no")

	userID := claims.UserID
	c.Context().SetBodyStreamWriter(fasthttp.StreamWriter(func(w *bufio.Writer) {
		defer cancel()

		if err := writeEvent(w, "snapshot", snap); err != nil {
			return
		}

		heartbeat := time.NewTicker(HeartbeatInterval)
		defer heartbeat.Stop()

		for {
			select {
			case tick, ok := <-ticks:
				if !ok {
					return
				}
				if err := writeEvent(w, "tick", tick); err != nil {
					log.Printf("Live stream for %s closed: %v", userID, err)
					return
				}
			case <-heartbeat.C:
				if _, err := w.WriteString(": ping\n\n"); err != nil {
					return
				}
				if err := w.Flush(); err != nil {
					return
				}
			}
		}
	}))
	return nil
}

func writeEvent(w *bufio.Writer, event string, data interface{}) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event, payload); err != nil {
		return err
	}
	return w.Flush()
}

// History returns the newest-first attendance of a user. Callers read their
// own history; attendance:read is needed for anyone else's.
func (h *AttendanceHandler) History(c *fiber.Ctx) error {
	userID, err := h.historySubject(c)
	if err != nil {
		return response.FromError(c, err)
	}

	entries, err := h.attendanceService.History(c.UserContext(), userID)
	if err != nil {
		return response.FromError(c, err)
	}
	return response.Success(c, "Attendance history retrieved", entries)
}

// Export sends the history as an xlsx workbook.
func (h *AttendanceHandler) Export(c *fiber.Ctx) error {
	userID, err := h.historySubject(c)
	if err != nil {
		return response.FromError(c, err)
	}

	user, err := h.employeeService.GetProfile(c.UserContext(), userID)
	if err != nil {
		return response.FromError(c, err)
	}

	data, err := h.attendanceService.Export(c.UserContext(), userID, user.Name)
	if err != nil {
		return response.FromError(c, err)
	}

	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="attendance-%s.xlsx"`, userID))
	return c.Send(data)
}

// Sync accepts a client-reported day record.
func (h *AttendanceHandler) Sync(c *fiber.Ctx) error {
	claims, err := utils.GetUserClaims(c)
	if err != nil {
		return response.Unauthorized(c)
	}

	var input struct {
		DateKey string `json:"dateKey"`
		attendance.State
	}
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	snap, err := h.attendanceService.Sync(c.UserContext(), claims.UserID, input.DateKey, input.State)
	if err != nil {
		return response.FromError(c, err)
	}
	return response.Success(c, "Attendance synced", snap)
}

func (h *AttendanceHandler) historySubject(c *fiber.Ctx) (string, error) {
	claims, err := utils.GetUserClaims(c)
	if err != nil {
		return "", apperrors.New(apperrors.ErrInvalidCredentials, "Unauthorized")
	}

	userID := c.Params("userId")
	if userID == "" || userID == "me" {
		return claims.UserID, nil
	}
	if userID != claims.UserID && !claims.IsSuperAdmin() && !claims.HasPermission(models.PermissionAttendanceRead) {
		return "", apperrors.ErrForbidden
	}
	return userID, nil
}
