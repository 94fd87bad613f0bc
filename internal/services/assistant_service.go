package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/time/rate"

	"github.com/ftr-labs/fliphq/internal/catalog"
	"github.com/ftr-labs/fliphq/internal/metrics"
	"github.com/ftr-labs/fliphq/internal/models"
)

// MessagesPerToken is the exchange allowance one token buys
const MessagesPerToken = 3

// ErrAssistantBusy is returned when chat requests exceed the rate limit
var ErrAssistantBusy = errors.New("assistant is handling too many requests, try again in a moment")

// ChatRequest is one user message in an assistant session
type ChatRequest struct {
	SessionID string `json:"session_id" binding:"required"`
	Message   string `json:"message" binding:"required"`
}

// ChatReply is the assistant's answer plus token accounting
type ChatReply struct {
	Reply           string `json:"reply"`
	TokensRemaining int    `json:"tokens_remaining"`
	TokenCharged    bool   `json:"token_charged"`
}

// AssistantService is FlipBot: a scripted flip advisor. One token buys three
// exchanges; the charge lands on the first message of each block and is
// refunded if no reply can be produced.
type AssistantService struct {
	tokens  *TokenService
	catalog *catalog.Catalog
	limiter *rate.Limiter

	mu       sync.Mutex
	sessions map[string]int // session ID -> messages handled
}

// NewAssistantService creates the assistant
func NewAssistantService(tokens *TokenService, cat *catalog.Catalog) *AssistantService {
	return &AssistantService{
		tokens:   tokens,
		catalog:  cat,
		limiter:  rate.NewLimiter(rate.Limit(2), 5),
		sessions: make(map[string]int),
	}
}

// Chat handles one exchange. Returns ErrInsufficientTokens when a new token
// is due and the balance is empty, ErrAssistantBusy when rate limited.
func (s *AssistantService) Chat(ctx context.Context, req ChatRequest) (*ChatReply, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !s.limiter.Allow() {
		metrics.AssistantRequestsTotal.WithLabelValues("rate_limited").Inc()
		return nil, ErrAssistantBusy
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	charged := false
	if s.sessions[req.SessionID]%MessagesPerToken == 0 {
		deducted, err := s.tokens.Deduct()
		if err != nil {
			return nil, err
		}
		if !deducted {
			metrics.AssistantRequestsTotal.WithLabelValues("insufficient").Inc()
			return nil, ErrInsufficientTokens
		}
		charged = true
	}

	reply := s.respond(req.Message)
	if reply == "" {
		if charged {
			if _, err := s.tokens.Refund(); err != nil {
				return nil, err
			}
			charged = false
		}
		reply = "FlipBot is having trouble right now. Try again in a moment."
	} else {
		s.sessions[req.SessionID]++
	}

	remaining, err := s.tokens.Get()
	if err != nil {
		return nil, err
	}

	metrics.AssistantRequestsTotal.WithLabelValues("success").Inc()
	return &ChatReply{Reply: reply, TokensRemaining: remaining, TokenCharged: charged}, nil
}

var dollarAmountRe = regexp.MustCompile(`\$\s*(\d+(?:\.\d{1,2})?)`)

// categoryKeywords routes a free-form message to an item category
var categoryKeywords = map[models.Category][]string{
	models.CategoryFurniture:    {"couch", "sofa", "chair", "table", "dresser", "bookshelf", "furniture"},
	models.CategoryElectronics:  {"phone", "iphone", "laptop", "tablet", "console", "speaker", "camera", "turntable", "electronics"},
	models.CategoryClothing:     {"jacket", "sneaker", "shoe", "jeans", "handbag", "purse", "watch", "clothes", "clothing"},
	models.CategoryTools:        {"drill", "saw", "mower", "toolbox", "tool"},
	models.CategoryDecor:        {"lamp", "mirror", "rug", "artwork", "art", "decor"},
	models.CategoryCollectibles: {"vinyl", "record", "comic", "figurine", "card", "coin", "collectible"},
}

// respond generates a scripted answer in the FlipBot register: quick
// assessment, breakdown, recommendation, action steps.
func (s *AssistantService) respond(message string) string {
	lower := strings.ToLower(message)

	category, matched := matchCategory(lower)
	cost, hasCost := extractDollarAmount(message)

	if !matched {
		return "**Quick Assessment**: Need more to go on.\n" +
			"**Breakdown**: Tell me what the item is and what they're asking for it.\n" +
			"**Recommendation**: Name the category (furniture, electronics, clothing, tools, decor, collectibles) and the price.\n" +
			"**Action Steps**: Snap a photo, note any damage, and give me the numbers."
	}

	subcats := s.catalog.SubcategoryOptions(category)
	typical := 0.0
	for _, sub := range subcats {
		typical += s.catalog.BasePrice(sub)
	}
	if len(subcats) > 0 {
		typical /= float64(len(subcats))
	}

	platforms := s.catalog.Platforms(category)
	platform := "eBay"
	if len(platforms) > 0 {
		platform = platforms[0]
	}
	kit := strings.Join(s.catalog.Toolkit(category), ", ")

	verdict := "That's a gem. Go for it."
	if hasCost {
		switch {
		case cost >= typical:
			verdict = "Hard pass. You'd be paying retail for someone else's problem."
		case cost >= typical*0.6:
			verdict = "Marginal. Only grab it if it's clean and works."
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "**Quick Assessment**: %s\n", verdict)
	fmt.Fprintf(&b, "**Breakdown**:\n")
	if hasCost {
		fmt.Fprintf(&b, "- Acquisition Cost: $%.0f\n", cost)
	} else {
		fmt.Fprintf(&b, "- Acquisition Cost: unknown — get a number before you commit\n")
	}
	fmt.Fprintf(&b, "- Typical Resale Value (%s): $%.0f-$%.0f\n", category, typical*0.85, typical*1.15)
	fmt.Fprintf(&b, "- Platform Fees: ~$%.0f\n", typical*0.1)
	fmt.Fprintf(&b, "**Recommendation**: List it on %s — that's where %s moves fastest.\n", platform, category)
	fmt.Fprintf(&b, "**Action Steps**: Clean it up (%s), shoot photos in daylight, price just under the going rate, and log it in FlipHQ.", kit)

	return b.String()
}

func matchCategory(lower string) (models.Category, bool) {
	for _, category := range models.AllCategories() {
		for _, kw := range categoryKeywords[category] {
			if strings.Contains(lower, kw) {
				return category, true
			}
		}
	}
	return "", false
}

func extractDollarAmount(message string) (float64, bool) {
	m := dollarAmountRe.FindStringSubmatch(message)
	if m == nil {
		return 0, false
	}
	amount, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, false
	}
	return amount, true
}
