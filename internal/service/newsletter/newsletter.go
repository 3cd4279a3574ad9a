package newsletter

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/nats-io/nats.go"

	"github.com/muchiri-dev/dermacare_backend/internal/repo"
	entnews "github.com/muchiri-dev/dermacare_backend/internal/repo/newsletter"
	entcampaign "github.com/muchiri-dev/dermacare_backend/internal/repo/newslettercampaign"
	entsub "github.com/muchiri-dev/dermacare_backend/internal/repo/newslettersubscriber"
	"github.com/muchiri-dev/dermacare_backend/pkg/util/codes"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type SubscribeRequest struct {
	Email     string
	FirstName *string
	LastName  *string
}

type CreateRequest struct {
	Title       string
	Subject     string
	ContentHTML string
	ContentText string
	CreatedByID *uuid.UUID
}

type UpdateRequest struct {
	Title       *string
	Subject     *string
	ContentHTML *string
	ContentText *string
}

type ListRequest struct {
	Status  *string
	Page    int
	PerPage int
}

type PaginatedNewsletters struct {
	Items   []*repo.Newsletter
	Total   int
	Page    int
	PerPage int
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	// Subscribers
	Subscribe(ctx context.Context, req SubscribeRequest) (*repo.NewsletterSubscriber, error)
	Unsubscribe(ctx context.Context, email string) error
	// UnsubscribeByToken serves one-click unsubscribe links from newsletter
	// footers, where the visitor has no session and may not know which
	// address is subscribed.
	UnsubscribeByToken(ctx context.Context, token string) error
	ListSubscribers(ctx context.Context, activeOnly bool) ([]*repo.NewsletterSubscriber, error)

	// Newsletters
	Create(ctx context.Context, req CreateRequest) (*repo.Newsletter, error)
	GetByID(ctx context.Context, newsletterID uuid.UUID) (*repo.Newsletter, error)
	List(ctx context.Context, req ListRequest) (*PaginatedNewsletters, error)
	Update(ctx context.Context, newsletterID uuid.UUID, req UpdateRequest) (*repo.Newsletter, error)
	Delete(ctx context.Context, newsletterID uuid.UUID) error

	// Dispatch
	Schedule(ctx context.Context, newsletterID uuid.UUID, at time.Time) (*repo.Newsletter, error)
	CancelSchedule(ctx context.Context, newsletterID uuid.UUID) (*repo.Newsletter, error)
	Send(ctx context.Context, newsletterID uuid.UUID) (*repo.NewsletterCampaign, error)
	ListCampaigns(ctx context.Context, newsletterID uuid.UUID) ([]*repo.NewsletterCampaign, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type newsletterService struct {
	db *repo.Client
	nc *nats.Conn
}

func New(db *repo.Client, nc *nats.Conn) Service {
	return &newsletterService{db: db, nc: nc}
}

// ---------------------------------------------------------------------------
// Subscribers
// ---------------------------------------------------------------------------

// Subscribe adds an email to the list. Re-subscribing a previously
// unsubscribed address reactivates the existing row; subscribed_at keeps
// its original value.
func (s *newsletterService) Subscribe(ctx context.Context, req SubscribeRequest) (*repo.NewsletterSubscriber, error) {
	existing, err := s.db.NewsletterSubscriber.Query().
		Where(entsub.Email(req.Email)).
		Only(ctx)
	if err != nil && !repo.IsNotFound(err) {
		return nil, fmt.Errorf("get subscriber: %w", err)
	}

	if existing != nil {
		if existing.IsActive {
			return nil, ErrAlreadySubscribed
		}
		u := s.db.NewsletterSubscriber.UpdateOne(existing).
			SetIsActive(true).
			ClearUnsubscribedAt()
		if req.FirstName != nil {
			u = u.SetNillableFirstName(req.FirstName)
		}
		if req.LastName != nil {
			u = u.SetNillableLastName(req.LastName)
		}
		sub, err := u.Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("reactivate subscriber: %w", err)
		}
		return sub, nil
	}

	token, err := codes.GenerateUnsubscribeToken()
	if err != nil {
		return nil, fmt.Errorf("generate unsubscribe token: %w", err)
	}

	c := s.db.NewsletterSubscriber.Create().
		SetEmail(req.Email).
		SetUnsubscribeToken(token).
		SetSubscribedAt(time.Now().UTC())
	if req.FirstName != nil {
		c = c.SetNillableFirstName(req.FirstName)
	}
	if req.LastName != nil {
		c = c.SetNillableLastName(req.LastName)
	}

	sub, err := c.Save(ctx)
	if err != nil {
		if repo.IsConstraintError(err) {
			return nil, ErrAlreadySubscribed
		}
		return nil, fmt.Errorf("create subscriber: %w", err)
	}
	return sub, nil
}

func (s *newsletterService) Unsubscribe(ctx context.Context, email string) error {
	sub, err := s.db.NewsletterSubscriber.Query().
		Where(entsub.Email(email)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return ErrSubscriberNotFound
		}
		return fmt.Errorf("get subscriber: %w", err)
	}
	return s.deactivate(ctx, sub)
}

func (s *newsletterService) UnsubscribeByToken(ctx context.Context, token string) error {
	sub, err := s.db.NewsletterSubscriber.Query().
		Where(entsub.UnsubscribeToken(token)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return ErrSubscriberNotFound
		}
		return fmt.Errorf("get subscriber: %w", err)
	}
	return s.deactivate(ctx, sub)
}

func (s *newsletterService) deactivate(ctx context.Context, sub *repo.NewsletterSubscriber) error {
	if !sub.IsActive {
		return nil
	}

	_, err := s.db.NewsletterSubscriber.UpdateOne(sub).
		SetIsActive(false).
		SetUnsubscribedAt(time.Now().UTC()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("unsubscribe: %w", err)
	}
	return nil
}

func (s *newsletterService) ListSubscribers(ctx context.Context, activeOnly bool) ([]*repo.NewsletterSubscriber, error) {
	q := s.db.NewsletterSubscriber.Query()
	if activeOnly {
		q = q.Where(entsub.IsActive(true))
	}
	subs, err := q.
		Order(entsub.BySubscribedAt(sql.OrderAsc())).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list subscribers: %w", err)
	}
	return subs, nil
}

// ---------------------------------------------------------------------------
// Newsletters
// ---------------------------------------------------------------------------

func (s *newsletterService) Create(ctx context.Context, req CreateRequest) (*repo.Newsletter, error) {
	c := s.db.Newsletter.Create().
		SetTitle(req.Title).
		SetSubject(req.Subject).
		SetContentHTML(req.ContentHTML).
		SetContentText(req.ContentText)
	if req.CreatedByID != nil {
		c = c.SetCreatedByID(*req.CreatedByID)
	}

	n, err := c.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create newsletter: %w", err)
	}
	return n, nil
}

func (s *newsletterService) GetByID(ctx context.Context, newsletterID uuid.UUID) (*repo.Newsletter, error) {
	n, err := s.db.Newsletter.Get(ctx, newsletterID)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get newsletter: %w", err)
	}
	return n, nil
}

func (s *newsletterService) List(ctx context.Context, req ListRequest) (*PaginatedNewsletters, error) {
	page := req.Page
	if page < 1 {
		page = 1
	}
	perPage := req.PerPage
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}

	q := s.db.Newsletter.Query()
	if req.Status != nil {
		q = q.Where(entnews.StatusEQ(entnews.Status(*req.Status)))
	}

	total, err := q.Clone().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count newsletters: %w", err)
	}

	items, err := q.
		Order(entnews.ByCreatedAt(sql.OrderDesc())).
		Offset((page - 1) * perPage).
		Limit(perPage).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list newsletters: %w", err)
	}

	return &PaginatedNewsletters{Items: items, Total: total, Page: page, PerPage: perPage}, nil
}

func (s *newsletterService) Update(ctx context.Context, newsletterID uuid.UUID, req UpdateRequest) (*repo.Newsletter, error) {
	n, err := s.GetByID(ctx, newsletterID)
	if err != nil {
		return nil, err
	}
	if n.Status == entnews.StatusSent {
		return nil, ErrAlreadySent
	}

	u := s.db.Newsletter.UpdateOne(n)
	if req.Title != nil {
		u = u.SetTitle(*req.Title)
	}
	if req.Subject != nil {
		u = u.SetSubject(*req.Subject)
	}
	if req.ContentHTML != nil {
		u = u.SetContentHTML(*req.ContentHTML)
	}
	if req.ContentText != nil {
		u = u.SetContentText(*req.ContentText)
	}

	updated, err := u.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update newsletter: %w", err)
	}
	return updated, nil
}

func (s *newsletterService) Delete(ctx context.Context, newsletterID uuid.UUID) error {
	n, err := s.GetByID(ctx, newsletterID)
	if err != nil {
		return err
	}
	if n.Status == entnews.StatusSent {
		return ErrAlreadySent
	}

	if err := s.db.Newsletter.DeleteOne(n).Exec(ctx); err != nil {
		return fmt.Errorf("delete newsletter: %w", err)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Dispatch
// ---------------------------------------------------------------------------

func (s *newsletterService) Schedule(ctx context.Context, newsletterID uuid.UUID, at time.Time) (*repo.Newsletter, error) {
	n, err := s.GetByID(ctx, newsletterID)
	if err != nil {
		return nil, err
	}
	if n.Status != entnews.StatusDraft && n.Status != entnews.StatusScheduled {
		return nil, ErrNotDraft
	}
	if at.Before(time.Now()) {
		return nil, ErrScheduleInPast
	}

	updated, err := s.db.Newsletter.UpdateOne(n).
		SetStatus(entnews.StatusScheduled).
		SetScheduledAt(at).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("schedule newsletter: %w", err)
	}
	return updated, nil
}

func (s *newsletterService) CancelSchedule(ctx context.Context, newsletterID uuid.UUID) (*repo.Newsletter, error) {
	n, err := s.GetByID(ctx, newsletterID)
	if err != nil {
		return nil, err
	}
	if n.Status != entnews.StatusScheduled {
		return nil, ErrNotDraft
	}

	updated, err := s.db.Newsletter.UpdateOne(n).
		SetStatus(entnews.StatusCancelled).
		ClearScheduledAt().
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("cancel newsletter schedule: %w", err)
	}
	return updated, nil
}

// Send opens a campaign for the newsletter and hands delivery to the
// dispatch worker over NATS. The worker fans out to active subscribers and
// closes the campaign when done.
func (s *newsletterService) Send(ctx context.Context, newsletterID uuid.UUID) (*repo.NewsletterCampaign, error) {
	n, err := s.GetByID(ctx, newsletterID)
	if err != nil {
		return nil, err
	}
	if n.Status == entnews.StatusSent {
		return nil, ErrAlreadySent
	}
	if n.Status == entnews.StatusCancelled {
		return nil, ErrNotDraft
	}

	campaign, err := s.db.NewsletterCampaign.Create().
		SetNewsletterID(n.ID).
		SetStartedAt(time.Now().UTC()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create campaign: %w", err)
	}

	s.publish("dispatch", campaign.ID)
	return campaign, nil
}

func (s *newsletterService) ListCampaigns(ctx context.Context, newsletterID uuid.UUID) ([]*repo.NewsletterCampaign, error) {
	if _, err := s.GetByID(ctx, newsletterID); err != nil {
		return nil, err
	}

	campaigns, err := s.db.NewsletterCampaign.Query().
		Where(entcampaign.NewsletterID(newsletterID)).
		Order(entcampaign.ByCreatedAt(sql.OrderDesc())).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list campaigns: %w", err)
	}
	return campaigns, nil
}

func (s *newsletterService) publish(event string, id uuid.UUID) {
	if s.nc == nil {
		return
	}
	subject := fmt.Sprintf("dermacare.newsletter.%s.%s", event, id.String())
	_ = s.nc.Publish(subject, []byte(id.String()))
}
