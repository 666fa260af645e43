package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"badmintonpro/internal/models"
)

// AssistantProvider generates a reply from a language model. Implementations
// wrap an external completion API; a nil provider means no model is
// configured and the scripted fallback answers instead.
type AssistantProvider interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// ChatMessage is one turn of the assistant conversation.
type ChatMessage struct {
	Role string `json:"role" validate:"required,oneof=user model"`
	Text string `json:"text" validate:"required"`
}

// AssistantService answers shopping questions. With a configured provider
// it sends the conversation plus an inventory digest to the model; without
// one, or when the provider fails, it falls back to scripted keyword
// replies so the assistant never goes dark.
type AssistantService struct {
	catalog  *CatalogService
	provider AssistantProvider
}

// NewAssistantService creates a new AssistantService. provider may be nil.
func NewAssistantService(catalog *CatalogService, provider AssistantProvider) *AssistantService {
	return &AssistantService{catalog: catalog, provider: provider}
}

// Reply produces the assistant's answer to the latest user message given
// the prior conversation.
func (s *AssistantService) Reply(ctx context.Context, history []ChatMessage, userMessage string) string {
	if s.provider == nil {
		return fallbackReply(userMessage)
	}

	prompt := s.buildPrompt(history, userMessage)
	text, err := s.provider.Generate(ctx, prompt)
	if err != nil || strings.TrimSpace(text) == "" {
		if err != nil {
			log.Printf("Warning: assistant provider failed, using scripted reply: %v", err)
		}
		return fallbackReply(userMessage)
	}
	return text
}

func (s *AssistantService) buildPrompt(history []ChatMessage, userMessage string) string {
	var sb strings.Builder
	sb.WriteString("System Instruction:\n")
	sb.WriteString("You are an expert sales assistant for \"BadmintonPro\", a badminton equipment shop.\n\n")
	sb.WriteString("Help the user find the best product from the AVAILABLE INVENTORY below. ")
	sb.WriteString("Ask clarifying questions one by one (skill level, play style, sizes) before recommending 1-3 specific products. ")
	sb.WriteString("Format every recommended product name as a link like [Product Name](/product/ID). ")
	sb.WriteString("Never recommend products outside the inventory, keep replies concise, and steer off-topic questions back to the store.\n\n")
	sb.WriteString("AVAILABLE INVENTORY JSON:\n")
	sb.WriteString(s.inventoryContext())
	sb.WriteString("\n\nCURRENT CONVERSATION:\n")
	for _, m := range history {
		role := "User"
		if m.Role == "model" {
			role = "Assistant"
		}
		fmt.Fprintf(&sb, "%s: %s\n", role, m.Text)
	}
	fmt.Fprintf(&sb, "User: %s\nAssistant:", userMessage)
	return sb.String()
}

// inventoryContext is a compact catalog digest the model can ground its
// recommendations on.
func (s *AssistantService) inventoryContext() string {
	type entry struct {
		ID       string               `json:"id"`
		Name     string               `json:"name"`
		Category string               `json:"category"`
		Brand    string               `json:"brand"`
		Price    float64              `json:"price"`
		Tags     []string             `json:"tags,omitempty"`
		Specs    *models.ProductSpecs `json:"specs,omitempty"`
	}
	products := s.catalog.List()
	entries := make([]entry, 0, len(products))
	for _, p := range products {
		entries = append(entries, entry{
			ID:       p.ID,
			Name:     p.Name,
			Category: p.Category,
			Brand:    p.Brand,
			Price:    p.Price,
			Tags:     p.Tags,
			Specs:    p.Specs,
		})
	}
	data, err := json.Marshal(entries)
	if err != nil {
		return "[]"
	}
	return string(data)
}

// fallbackReply is the scripted keyword responder used when no model is
// configured or the provider errors out.
func fallbackReply(userMessage string) string {
	msg := strings.ToLower(userMessage)
	contains := func(subs ...string) bool {
		for _, sub := range subs {
			if strings.Contains(msg, sub) {
				return true
			}
		}
		return false
	}

	switch {
	case contains("racket", "rocket", "拍"):
		return "Great choice! For rackets, I'd recommend:\n\n• **[Astrox 99 Pro](/product/1)** - Head-heavy, great for power players\n• **[Thruster F Claw](/product/2)** - Excellent for attacking play\n• **[Nanoflare 800 LT](/product/6)** - Light and fast for doubles\n\nWhat's your skill level? (Beginner/Intermediate/Advanced)"
	case contains("shoe", "鞋"):
		return "For badminton shoes, check out:\n\n• **[Power Cushion 65 Z](/product/3)** - Excellent cushioning ($145)\n• **[Li-Ning Ranger VI](/product/9)** - Great stability ($145)\n• **[Victor P9200 Court Shoes](/product/12)** - Lightweight and durable ($140)\n\nWhat's your shoe size?"
	case contains("apparel", "shirt", "jersey", "衣"):
		return "We have great apparel options:\n\n• **[Li-Ning Team Jersey](/product/10)** - Breathable team wear ($45)\n• **[Tournament Tee](/product/13)** - Cool and dry on court ($29)\n\nAre you looking for men's or women's apparel?"
	case contains("accessori", "grip", "shuttlecock", "配件"):
		return "For accessories, we recommend:\n\n• **[Pro Grip Tape (Blue)](/product/11)** - $8.50\n• **[Aerosensa 50 (Dozen)](/product/4)** - Tournament grade shuttlecocks ($35)\n\nNeed anything specific?"
	case contains("beginner", "初学"):
		return "For beginners, I recommend:\n\n• **[Nanoflare 800 LT](/product/6)** - Light and easy to handle\n• **[Arcsaber 11 Pro](/product/7)** - Great control and balance\n\nThese rackets are forgiving and help you develop proper technique!"
	case contains("advanced", "pro", "高级"):
		return "For advanced players seeking power:\n\n• **[Astrox 99 Pro](/product/1)** - Maximum smash power ($219)\n• **[Thruster F Claw](/product/2)** - Aggressive attacking racket ($185)\n\nBoth have stiff shafts for explosive power!"
	}
	return "I can help you find the perfect badminton gear! We have:\n\n• **Rackets** - From Yonex, Victor, Li-Ning\n• **Shoes** - Power Cushion, Court shoes\n• **Apparel** - Jerseys and sportswear\n• **Accessories** - Grips, shuttlecocks, bags\n\nWhat are you looking for today?"
}

// HTTPProvider calls a hosted completion endpoint over plain HTTP. The
// request and response shapes follow the simple prompt-in, text-out
// contract most gateway deployments expose.
type HTTPProvider struct {
	url    string
	apiKey string
	client *http.Client
}

// NewHTTPProvider creates a provider for the given endpoint.
func NewHTTPProvider(url, apiKey string) *HTTPProvider {
	return &HTTPProvider{
		url:    url,
		apiKey: apiKey,
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

// Generate sends the prompt and returns the model's text.
func (p *HTTPProvider) Generate(ctx context.Context, prompt string) (string, error) {
	payload, err := json.Marshal(map[string]string{"prompt": prompt})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.url, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.apiKey)

	resp, err := p.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("assistant endpoint returned %d: %s", resp.StatusCode, body)
	}

	var out struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("failed to decode assistant response: %w", err)
	}
	return out.Text, nil
}
