package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"golang.org/x/time/rate"

	"github.com/ftr-labs/fliphq/internal/catalog"
)

func newTestAssistant(t *testing.T) (*AssistantService, *TokenService) {
	t.Helper()
	tokens := NewTokenService(newTestDB(t))
	svc := NewAssistantService(tokens, catalog.Default())
	// Tests fire messages back to back; leave rate limiting to its own test.
	svc.limiter = rate.NewLimiter(rate.Inf, 0)
	return svc, tokens
}

func TestChatChargesOneTokenPerThreeMessages(t *testing.T) {
	svc, _ := newTestAssistant(t)
	ctx := context.Background()

	for i := 0; i < MessagesPerToken; i++ {
		reply, err := svc.Chat(ctx, ChatRequest{SessionID: "s1", Message: "found a sofa for $20"})
		if err != nil {
			t.Fatalf("Chat() #%d error: %v", i+1, err)
		}

		wantCharged := i == 0
		if reply.TokenCharged != wantCharged {
			t.Errorf("message %d: TokenCharged = %v, want %v", i+1, reply.TokenCharged, wantCharged)
		}
		if reply.TokensRemaining != InitialTokens-1 {
			t.Errorf("message %d: TokensRemaining = %d, want %d", i+1, reply.TokensRemaining, InitialTokens-1)
		}
	}

	// Message four starts a new block and costs another token.
	reply, err := svc.Chat(ctx, ChatRequest{SessionID: "s1", Message: "what about a lamp?"})
	if err != nil {
		t.Fatalf("Chat() #4 error: %v", err)
	}
	if !reply.TokenCharged {
		t.Error("fourth message did not start a new paid block")
	}
	if reply.TokensRemaining != InitialTokens-2 {
		t.Errorf("TokensRemaining = %d, want %d", reply.TokensRemaining, InitialTokens-2)
	}
}

func TestChatSessionsAreIndependent(t *testing.T) {
	svc, _ := newTestAssistant(t)
	ctx := context.Background()

	if _, err := svc.Chat(ctx, ChatRequest{SessionID: "s1", Message: "sofa for $20"}); err != nil {
		t.Fatalf("Chat() error: %v", err)
	}
	reply, err := svc.Chat(ctx, ChatRequest{SessionID: "s2", Message: "drill for $10"})
	if err != nil {
		t.Fatalf("Chat() error: %v", err)
	}
	if !reply.TokenCharged {
		t.Error("first message of a new session should be charged")
	}
}

func TestChatRefusesEmptyWallet(t *testing.T) {
	svc, tokens := newTestAssistant(t)
	if _, err := tokens.Set(0); err != nil {
		t.Fatalf("Set() error: %v", err)
	}

	_, err := svc.Chat(context.Background(), ChatRequest{SessionID: "s1", Message: "sofa for $20"})
	if !errors.Is(err, ErrInsufficientTokens) {
		t.Errorf("error = %v, want ErrInsufficientTokens", err)
	}
}

func TestChatReplyShape(t *testing.T) {
	svc, _ := newTestAssistant(t)

	reply, err := svc.Chat(context.Background(), ChatRequest{
		SessionID: "s1",
		Message:   "Found an iPhone at a yard sale for $30, worth it?",
	})
	if err != nil {
		t.Fatalf("Chat() error: %v", err)
	}

	for _, section := range []string{"**Quick Assessment**", "**Breakdown**", "**Recommendation**", "**Action Steps**"} {
		if !strings.Contains(reply.Reply, section) {
			t.Errorf("reply missing %s section", section)
		}
	}
	if !strings.Contains(reply.Reply, "$30") {
		t.Error("reply does not echo the asking price")
	}
	// Electronics move on eBay per the catalog.
	if !strings.Contains(reply.Reply, "eBay") {
		t.Error("reply missing the platform recommendation")
	}
}

func TestChatHandlesUnrecognizedItems(t *testing.T) {
	svc, _ := newTestAssistant(t)

	reply, err := svc.Chat(context.Background(), ChatRequest{
		SessionID: "s1",
		Message:   "what do you think?",
	})
	if err != nil {
		t.Fatalf("Chat() error: %v", err)
	}
	if !strings.Contains(reply.Reply, "**Quick Assessment**") {
		t.Error("fallback reply missing assessment section")
	}
}

func TestChatRateLimit(t *testing.T) {
	tokens := NewTokenService(newTestDB(t))
	if _, err := tokens.Set(100); err != nil {
		t.Fatalf("Set() error: %v", err)
	}
	svc := NewAssistantService(tokens, catalog.Default())

	// Burn through the burst allowance; the limiter refills far too slowly
	// for this loop to earn more.
	var limited bool
	for i := 0; i < 10; i++ {
		_, err := svc.Chat(context.Background(), ChatRequest{SessionID: "s1", Message: "sofa for $20"})
		if errors.Is(err, ErrAssistantBusy) {
			limited = true
			break
		}
		if err != nil {
			t.Fatalf("Chat() #%d error: %v", i+1, err)
		}
	}
	if !limited {
		t.Error("rapid-fire requests were never rate limited")
	}
}
