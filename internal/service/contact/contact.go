package contact

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/muchiri-dev/dermacare_backend/internal/repo"
	entmsg "github.com/muchiri-dev/dermacare_backend/internal/repo/contactmessage"
	entresp "github.com/muchiri-dev/dermacare_backend/internal/repo/contactresponse"
	entuser "github.com/muchiri-dev/dermacare_backend/internal/repo/user"
	"github.com/muchiri-dev/dermacare_backend/pkg/email"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type SubmitRequest struct {
	Name    string
	Email   string
	Phone   *string
	Subject string
	Message string
}

type ListRequest struct {
	Status     *string
	AssignedTo *uuid.UUID
	Page       int
	PerPage    int
}

type RespondRequest struct {
	MessageID     uuid.UUID
	Response      string
	RespondedByID *uuid.UUID
	ClinicName    string
}

type PaginatedMessages struct {
	Items   []*repo.ContactMessage
	Total   int
	Page    int
	PerPage int
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	// Submit records a message from the public contact form.
	Submit(ctx context.Context, req SubmitRequest) (*repo.ContactMessage, error)

	GetByID(ctx context.Context, messageID uuid.UUID) (*repo.ContactMessage, error)
	List(ctx context.Context, req ListRequest) (*PaginatedMessages, error)

	MarkRead(ctx context.Context, messageID uuid.UUID) (*repo.ContactMessage, error)
	Assign(ctx context.Context, messageID, userID uuid.UUID) (*repo.ContactMessage, error)

	// Respond stores a staff response, emails it to the sender and moves the
	// message to "responded". The email send is best effort; the response row
	// records whether it went out.
	Respond(ctx context.Context, req RespondRequest) (*repo.ContactResponse, error)
	ListResponses(ctx context.Context, messageID uuid.UUID) ([]*repo.ContactResponse, error)

	Close(ctx context.Context, messageID uuid.UUID) (*repo.ContactMessage, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type contactService struct {
	db     *repo.Client
	mailer *email.Client
}

func New(db *repo.Client, mailer *email.Client) Service {
	return &contactService{db: db, mailer: mailer}
}

func (s *contactService) Submit(ctx context.Context, req SubmitRequest) (*repo.ContactMessage, error) {
	c := s.db.ContactMessage.Create().
		SetName(req.Name).
		SetEmail(req.Email).
		SetSubject(req.Subject).
		SetMessage(req.Message)
	if req.Phone != nil {
		c = c.SetNillablePhone(req.Phone)
	}

	msg, err := c.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create contact message: %w", err)
	}
	return msg, nil
}

func (s *contactService) GetByID(ctx context.Context, messageID uuid.UUID) (*repo.ContactMessage, error) {
	msg, err := s.db.ContactMessage.Query().
		Where(entmsg.ID(messageID)).
		WithAssignedTo().
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get contact message: %w", err)
	}
	return msg, nil
}

func (s *contactService) List(ctx context.Context, req ListRequest) (*PaginatedMessages, error) {
	page := req.Page
	if page < 1 {
		page = 1
	}
	perPage := req.PerPage
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}

	q := s.db.ContactMessage.Query()
	if req.Status != nil {
		q = q.Where(entmsg.StatusEQ(entmsg.Status(*req.Status)))
	}
	if req.AssignedTo != nil {
		q = q.Where(entmsg.AssignedToID(*req.AssignedTo))
	}

	total, err := q.Clone().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count contact messages: %w", err)
	}

	items, err := q.
		Order(entmsg.ByCreatedAt(sql.OrderDesc())).
		Offset((page - 1) * perPage).
		Limit(perPage).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list contact messages: %w", err)
	}

	return &PaginatedMessages{Items: items, Total: total, Page: page, PerPage: perPage}, nil
}

func (s *contactService) MarkRead(ctx context.Context, messageID uuid.UUID) (*repo.ContactMessage, error) {
	msg, err := s.GetByID(ctx, messageID)
	if err != nil {
		return nil, err
	}
	if msg.Status != entmsg.StatusNew {
		return msg, nil
	}

	updated, err := s.db.ContactMessage.UpdateOne(msg).
		SetStatus(entmsg.StatusRead).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("mark contact message read: %w", err)
	}
	return updated, nil
}

func (s *contactService) Assign(ctx context.Context, messageID, userID uuid.UUID) (*repo.ContactMessage, error) {
	msg, err := s.GetByID(ctx, messageID)
	if err != nil {
		return nil, err
	}

	exists, err := s.db.User.Query().Where(entuser.ID(userID)).Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check assignee: %w", err)
	}
	if !exists {
		return nil, ErrAssigneeGone
	}

	updated, err := s.db.ContactMessage.UpdateOne(msg).
		SetAssignedToID(userID).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("assign contact message: %w", err)
	}
	return updated, nil
}

func (s *contactService) Respond(ctx context.Context, req RespondRequest) (*repo.ContactResponse, error) {
	msg, err := s.GetByID(ctx, req.MessageID)
	if err != nil {
		return nil, err
	}
	if msg.Status == entmsg.StatusClosed {
		return nil, ErrAlreadyClosed
	}

	c := s.db.ContactResponse.Create().
		SetContactMessageID(msg.ID).
		SetResponse(req.Response)
	if req.RespondedByID != nil {
		c = c.SetRespondedByID(*req.RespondedByID)
	}

	resp, err := c.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create contact response: %w", err)
	}

	m := email.BuildContactResponseEmail(msg.Email, msg.Name, msg.Subject, req.Response, req.ClinicName)
	if sendErr := s.mailer.Send(ctx, m); sendErr != nil {
		slog.Warn("contact response email not sent",
			"message_id", msg.ID.String(), "error", sendErr)
	} else {
		resp, err = s.db.ContactResponse.UpdateOne(resp).
			SetIsSent(true).
			SetSentAt(time.Now().UTC()).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("mark contact response sent: %w", err)
		}
	}

	_, err = s.db.ContactMessage.UpdateOne(msg).
		SetStatus(entmsg.StatusResponded).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update contact message status: %w", err)
	}

	return resp, nil
}

func (s *contactService) ListResponses(ctx context.Context, messageID uuid.UUID) ([]*repo.ContactResponse, error) {
	if _, err := s.GetByID(ctx, messageID); err != nil {
		return nil, err
	}

	responses, err := s.db.ContactResponse.Query().
		Where(entresp.ContactMessageID(messageID)).
		Order(entresp.ByCreatedAt(sql.OrderAsc())).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list contact responses: %w", err)
	}
	return responses, nil
}

func (s *contactService) Close(ctx context.Context, messageID uuid.UUID) (*repo.ContactMessage, error) {
	msg, err := s.GetByID(ctx, messageID)
	if err != nil {
		return nil, err
	}
	if msg.Status == entmsg.StatusClosed {
		return nil, ErrAlreadyClosed
	}

	updated, err := s.db.ContactMessage.UpdateOne(msg).
		SetStatus(entmsg.StatusClosed).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("close contact message: %w", err)
	}
	return updated, nil
}
