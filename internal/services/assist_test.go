package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"imagetagger/internal/adapters/auth"
	"imagetagger/internal/domain"
)

// fakeCompleter records the conversation and returns a canned reply.
type fakeCompleter struct {
	messages []domain.ChatMessage
	reply    string
	err      error
}

func (f *fakeCompleter) Complete(ctx context.Context, messages []domain.ChatMessage) (string, error) {
	f.messages = messages
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

func TestSuggestTag(t *testing.T) {
	imageServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("fake-jpeg-bytes"))
	}))
	defer imageServer.Close()

	completer := &fakeCompleter{reply: "\"sunset\"\n"}
	svc := NewAssistService(completer, imageServer.Client())

	out, err := svc.SuggestTag(context.Background(), TagSuggestionParams{
		GroupName:    "Photos",
		ImageName:    "beach.jpg",
		ImageURL:     imageServer.URL + "/beach.jpg",
		ApprovedTags: []string{"beach"},
		PendingTags:  []string{"sea"},
	})
	require.NoError(t, err)
	assert.Equal(t, "sunset", out, "reply must be unquoted and trimmed")

	require.Len(t, completer.messages, 2)
	prompt := completer.messages[1].Text
	assert.Contains(t, prompt, `"Photos"`)
	assert.Contains(t, prompt, "beach.jpg")
	assert.Contains(t, prompt, "do NOT repeat these): beach, sea")
	assert.True(t, strings.HasPrefix(completer.messages[1].ImageDataURL, "data:image/jpeg;base64,"))
}

func TestSuggestTag_ImageFetchFailure(t *testing.T) {
	imageServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer imageServer.Close()

	svc := NewAssistService(&fakeCompleter{reply: "x"}, imageServer.Client())
	_, err := svc.SuggestTag(context.Background(), TagSuggestionParams{ImageURL: imageServer.URL + "/gone.jpg"})
	require.ErrorContains(t, err, "failed to process image")
}

func TestChat(t *testing.T) {
	completer := &fakeCompleter{reply: "You have 3 images."}
	svc := NewAssistService(completer, nil)

	out, err := svc.Chat(context.Background(), "how many images do I have?", CollectionStats{
		TotalImages:        3,
		TotalGroups:        1,
		TotalTags:          2,
		PendingSuggestions: 1,
		GroupStats:         []GroupStat{{Name: "Photos", MemberCount: 2, ImageCount: 3}},
		TagStats:           map[string]int{"cute": 2, "beach": 1},
	})
	require.NoError(t, err)
	assert.Equal(t, "You have 3 images.", out)

	require.Len(t, completer.messages, 2)
	system := completer.messages[0].Text
	assert.Contains(t, system, "3 images across 1 groups")
	assert.Contains(t, system, `Group "Photos": 2 members, 3 images`)
	assert.Contains(t, system, "cute (2), beach (1)")
	assert.Equal(t, "how many images do I have?", completer.messages[1].Text)
}

func TestChat_CompleterError(t *testing.T) {
	svc := NewAssistService(&fakeCompleter{err: errors.New("quota exceeded")}, nil)
	_, err := svc.Chat(context.Background(), "hi", CollectionStats{})
	require.ErrorContains(t, err, "quota exceeded")
}

// fakeMailer records sent messages.
type fakeMailer struct {
	to, subject, text string
	sends             int
	err               error
}

func (f *fakeMailer) Send(to, subject, html, text string) error {
	f.to, f.subject, f.text = to, subject, text
	f.sends++
	return f.err
}

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestNotifyReviewed(t *testing.T) {
	users, err := NewUserService(auth.NewBcryptHasher(bcrypt.MinCost), auth.NewJWTCodec("s"), time.Hour)
	require.NoError(t, err)

	now := time.Now()
	suggestion := domain.TagSuggestion{
		ID:          "sug-1",
		Tag:         "cute",
		SuggestedBy: "bob",
		Status:      domain.StatusApproved,
		ReviewedBy:  "alice",
		ReviewedAt:  &now,
	}

	mailer := &fakeMailer{}
	NewReviewNotifier(mailer, users, discardLogger).NotifyReviewed(context.Background(), suggestion)
	require.Equal(t, 1, mailer.sends)
	assert.Equal(t, "bob@example.com", mailer.to)
	assert.Contains(t, mailer.subject, "approved")
	assert.Contains(t, mailer.text, "alice")

	// Unknown proposer: nothing sent, nothing fails.
	mailer = &fakeMailer{}
	suggestion.SuggestedBy = "someone-external"
	NewReviewNotifier(mailer, users, discardLogger).NotifyReviewed(context.Background(), suggestion)
	assert.Zero(t, mailer.sends)

	// Mailer failure is swallowed.
	mailer = &fakeMailer{err: errors.New("ses down")}
	suggestion.SuggestedBy = "bob"
	NewReviewNotifier(mailer, users, discardLogger).NotifyReviewed(context.Background(), suggestion)
	assert.Equal(t, 1, mailer.sends)
}
