package services

import (
	"context"
	"fmt"

	"github.com/healthyfi/healthyfi-be/internal/mailer"
)

const (
	newsletterSubject = "Subscribed"

	dietPlanLink     = "http://aditi.du.ac.in/uploads/econtent/diet_plan.pdf"
	dietPlanVideoURL = "https://www.youtube.com/watch?v=VEKba1nhsB0"
)

// SubscriptionServiceProvider defines the interface for the newsletter subscription.
type SubscriptionServiceProvider interface {
	Subscribe(ctx context.Context, userID int64) error
}

// SubscriptionService composes and sends the diet-plan newsletter email.
// A subscription is not persisted; the send attempt is the whole operation.
type SubscriptionService struct {
	users  UserServiceProvider
	sender mailer.Sender
}

// NewSubscriptionService creates a new SubscriptionService.
func NewSubscriptionService(users UserServiceProvider, sender mailer.Sender) *SubscriptionService {
	return &SubscriptionService{users: users, sender: sender}
}

// Subscribe loads the user and sends the fixed newsletter email to their
// stored address. One synchronous attempt; any relay failure surfaces as
// ErrDelivery.
func (s *SubscriptionService) Subscribe(ctx context.Context, userID int64) error {
	user, err := s.users.GetUserByID(userID)
	if err != nil {
		return err
	}

	body := fmt.Sprintf(
		"Thank you %s for subscribing with Healthyfi!\n\n"+
			"Every weekend you will receive our newsletter.\n"+
			"Below is a diet plan for your reference:\n%s\n%s\n",
		user.Name, dietPlanLink, dietPlanVideoURL,
	)

	if err := s.sender.Send(ctx, user.Email, newsletterSubject, body); err != nil {
		return fmt.Errorf("%w: %v", ErrDelivery, err)
	}
	return nil
}
