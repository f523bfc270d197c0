package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSender struct {
	err     error
	calls   int
	to      string
	subject string
	body    string
}

func (f *fakeSender) Send(_ context.Context, to, subject, body string) error {
	f.calls++
	f.to = to
	f.subject = subject
	f.body = body
	return f.err
}

func TestSubscribeSendsToStoredEmail(t *testing.T) {
	db := newTestDB(t)
	users := NewUserService(db)
	user, err := users.Register("a@x.com", "Ann", "pw1")
	require.NoError(t, err)

	sender := &fakeSender{}
	svc := NewSubscriptionService(users, sender)

	require.NoError(t, svc.Subscribe(context.Background(), user.ID))

	assert.Equal(t, 1, sender.calls)
	assert.Equal(t, "a@x.com", sender.to)
	assert.Equal(t, "Subscribed", sender.subject)
	assert.Contains(t, sender.body, "Ann")
	assert.Contains(t, sender.body, "http://aditi.du.ac.in/uploads/econtent/diet_plan.pdf")
	assert.Contains(t, sender.body, "https://www.youtube.com/watch?v=VEKba1nhsB0")
}

func TestSubscribeDeliveryError(t *testing.T) {
	db := newTestDB(t)
	users := NewUserService(db)
	user, err := users.Register("a@x.com", "Ann", "pw1")
	require.NoError(t, err)

	sender := &fakeSender{err: errors.New("535 authentication failed")}
	svc := NewSubscriptionService(users, sender)

	err = svc.Subscribe(context.Background(), user.ID)
	assert.ErrorIs(t, err, ErrDelivery)

	// A failed send leaves the stored user untouched; nothing about the
	// subscription attempt is persisted.
	stored, err := users.GetUserByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", stored.Email)
	assert.Nil(t, stored.Age)
	assert.Nil(t, stored.TrainerID)
}

func TestSubscribeUnknownUser(t *testing.T) {
	db := newTestDB(t)
	users := NewUserService(db)
	sender := &fakeSender{}
	svc := NewSubscriptionService(users, sender)

	err := svc.Subscribe(context.Background(), 42)
	assert.ErrorIs(t, err, ErrUnknownUser)
	assert.Zero(t, sender.calls)
}
