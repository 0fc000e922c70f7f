package handlers

import (
	"github.com/Ananth-NQI/eduguide-backend/internal/models"
	"github.com/Ananth-NQI/eduguide-backend/internal/storage"
	"github.com/gofiber/fiber/v2"
)

// Resource is the CRUD surface of one record kind
type Resource[T any] struct {
	Name   string
	Create func(*T) (*T, error)
	Get    func(id string) (*T, error)
	List   func() ([]*T, error)
	Update func(*T) error
	Delete func(id string) error
	SetID  func(row *T, id string)
}

// Register mounts POST/GET on the group root and GET/PUT/DELETE on /:id
func (r Resource[T]) Register(group fiber.Router) {
	group.Post("/", r.handleCreate)
	group.Get("/", r.handleList)
	group.Get("/:id", r.handleGet)
	if r.Update != nil {
		group.Put("/:id", r.handleUpdate)
	}
	if r.Delete != nil {
		group.Delete("/:id", r.handleDelete)
	}
}

func (r Resource[T]) handleCreate(c *fiber.Ctx) error {
	row := new(T)
	if err := c.BodyParser(row); err != nil {
		return badRequest(c, "Invalid request body")
	}

	created, err := r.Create(row)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (r Resource[T]) handleList(c *fiber.Ctx) error {
	rows, err := r.List()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		r.Name:  rows,
		"count": len(rows),
	})
}

func (r Resource[T]) handleGet(c *fiber.Ctx) error {
	row, err := r.Get(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(row)
}

func (r Resource[T]) handleUpdate(c *fiber.Ctx) error {
	id := c.Params("id")
	row := new(T)
	if err := c.BodyParser(row); err != nil {
		return badRequest(c, "Invalid request body")
	}
	r.SetID(row, id)

	if err := r.Update(row); err != nil {
		return respondError(c, err)
	}

	updated, err := r.Get(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(updated)
}

func (r Resource[T]) handleDelete(c *fiber.Ctx) error {
	if err := r.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// RegisterRecords mounts CRUD routes for every stored record kind
func RegisterRecords(api fiber.Router, store storage.Store) {
	Resource[models.Student]{
		Name:   "students",
		Create: store.CreateStudent,
		Get:    store.GetStudent,
		List:   store.GetAllStudents,
		Update: store.UpdateStudent,
		Delete: store.DeleteStudent,
		SetID:  func(s *models.Student, id string) { s.ID = id },
	}.Register(api.Group("/students"))

	Resource[models.College]{
		Name:   "colleges",
		Create: store.CreateCollege,
		Get:    store.GetCollege,
		List:   store.GetAllColleges,
		Update: store.UpdateCollege,
		Delete: store.DeleteCollege,
		SetID:  func(col *models.College, id string) { col.ID = id },
	}.Register(api.Group("/colleges"))

	Resource[models.Course]{
		Name:   "courses",
		Create: store.CreateCourse,
		Get:    store.GetCourse,
		List:   store.GetAllCourses,
		Update: store.UpdateCourse,
		Delete: store.DeleteCourse,
		SetID:  func(crs *models.Course, id string) { crs.ID = id },
	}.Register(api.Group("/courses"))

	Resource[models.Application]{
		Name:   "applications",
		Create: store.CreateApplication,
		Get:    store.GetApplication,
		List:   store.GetAllApplications,
		Update: store.UpdateApplication,
		Delete: store.DeleteApplication,
		SetID:  func(app *models.Application, id string) { app.ID = id },
	}.Register(api.Group("/applications"))

	Resource[models.CounselingSession]{
		Name:   "counseling_sessions",
		Create: store.CreateCounselingSession,
		Get:    store.GetCounselingSession,
		List:   store.GetAllCounselingSessions,
		Update: store.UpdateCounselingSession,
		Delete: store.DeleteCounselingSession,
		SetID:  func(cs *models.CounselingSession, id string) { cs.ID = id },
	}.Register(api.Group("/counseling-sessions"))

	chat := api.Group("/chat-messages")
	chat.Post("/", func(c *fiber.Ctx) error {
		msg := new(models.ChatMessage)
		if err := c.BodyParser(msg); err != nil {
			return badRequest(c, "Invalid request body")
		}
		if msg.Message == "" || (msg.Sender != models.SenderStudent && msg.Sender != models.SenderAI) {
			return badRequest(c, "Message and a sender of student or ai are required")
		}
		created, err := store.CreateChatMessage(msg)
		if err != nil {
			return respondError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(created)
	})
	chat.Get("/", func(c *fiber.Ctx) error {
		var (
			msgs []*models.ChatMessage
			err  error
		)
		switch {
		case c.Query("session_id") != "":
			msgs, err = store.GetChatMessagesBySession(c.Query("session_id"))
		case c.Query("student_id") != "":
			msgs, err = store.GetChatMessagesByStudent(c.Query("student_id"))
		default:
			return badRequest(c, "session_id or student_id is required")
		}
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(fiber.Map{
			"chat_messages": msgs,
			"count":         len(msgs),
		})
	})
}
