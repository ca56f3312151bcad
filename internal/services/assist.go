package services

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"

	"imagetagger/internal/domain"
)

// maxImageBytes caps how much of a remote image is downloaded for analysis.
const maxImageBytes = 10 << 20

// TagSuggestionParams is the input for an AI tag suggestion: the image to
// look at plus the tags that already exist so the model does not repeat them.
type TagSuggestionParams struct {
	GroupName    string
	ImageName    string
	ImageURL     string
	ApprovedTags []string
	RejectedTags []string
	PendingTags  []string
}

// GroupStat summarizes one group for the collection chat context.
type GroupStat struct {
	Name        string `json:"name"`
	MemberCount int    `json:"memberCount"`
	ImageCount  int    `json:"imageCount"`
}

// CollectionStats is the aggregate context the chat endpoint receives from
// the client alongside a message.
type CollectionStats struct {
	TotalImages        int            `json:"totalImages"`
	TotalGroups        int            `json:"totalGroups"`
	TotalTags          int            `json:"totalTags"`
	PendingSuggestions int            `json:"pendingSuggestions"`
	GroupStats         []GroupStat    `json:"groupStats"`
	TagStats           map[string]int `json:"tagStats"`
}

// AssistService turns store content into completion prompts: one-tag
// suggestions for an image, and free-form chat about the collection.
type AssistService struct {
	completer  domain.Completer
	httpClient *http.Client
}

// NewAssistService returns an AssistService calling the given completer.
// httpClient is used to download images for analysis; nil means
// http.DefaultClient.
func NewAssistService(completer domain.Completer, httpClient *http.Client) *AssistService {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &AssistService{completer: completer, httpClient: httpClient}
}

// SuggestTag downloads the image, attaches it to the prompt, and returns a
// single suggested tag.
func (s *AssistService) SuggestTag(ctx context.Context, params TagSuggestionParams) (string, error) {
	dataURL, err := s.fetchImageDataURL(ctx, params.ImageURL)
	if err != nil {
		return "", fmt.Errorf("failed to process image: %w", err)
	}

	existing := make([]string, 0,
		len(params.ApprovedTags)+len(params.RejectedTags)+len(params.PendingTags))
	existing = append(existing, params.ApprovedTags...)
	existing = append(existing, params.RejectedTags...)
	existing = append(existing, params.PendingTags...)

	var b strings.Builder
	fmt.Fprintf(&b, "Analyze this image from the group %q and suggest ONE descriptive, relevant tag.\n\n", params.GroupName)
	fmt.Fprintf(&b, "Context:\n- Image name: %s\n- Group: %s\n", params.ImageName, params.GroupName)
	fmt.Fprintf(&b, "- Approved tags: %s\n", orNone(params.ApprovedTags))
	fmt.Fprintf(&b, "- Rejected tags: %s\n", orNone(params.RejectedTags))
	fmt.Fprintf(&b, "- Pending tags: %s\n", orNone(params.PendingTags))
	if len(existing) > 0 {
		fmt.Fprintf(&b, "\nExisting tags (do NOT repeat these): %s\n", strings.Join(existing, ", "))
	}
	b.WriteString(`
Instructions:
1. Suggest exactly ONE tag
2. The tag must be descriptive and relevant to the image
3. Be specific and concise
4. Do NOT repeat existing tags
5. Focus on visual characteristics, objects, colors, or main concepts

Reply with only the suggested tag, no extra explanation.`)

	reply, err := s.completer.Complete(ctx, []domain.ChatMessage{
		{
			Role: "system",
			Text: "You are an assistant specialized in image analysis and descriptive tag generation. Suggest relevant, useful tags for categorizing images.",
		},
		{Role: "user", Text: b.String(), ImageDataURL: dataURL},
	})
	if err != nil {
		return "", err
	}
	return strings.Trim(reply, "\" \n"), nil
}

// Chat answers a free-form question about the collection using the stats the
// client supplied as context.
func (s *AssistService) Chat(ctx context.Context, message string, stats CollectionStats) (string, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "Current collection state:\n")
	fmt.Fprintf(&b, "- %d images across %d groups\n", stats.TotalImages, stats.TotalGroups)
	fmt.Fprintf(&b, "- %d approved tags, %d suggestions pending review\n", stats.TotalTags, stats.PendingSuggestions)
	for _, g := range stats.GroupStats {
		fmt.Fprintf(&b, "- Group %q: %d members, %d images\n", g.Name, g.MemberCount, g.ImageCount)
	}
	if len(stats.TagStats) > 0 {
		names := make([]string, 0, len(stats.TagStats))
		for name := range stats.TagStats {
			names = append(names, name)
		}
		sort.Slice(names, func(i, j int) bool {
			if stats.TagStats[names[i]] != stats.TagStats[names[j]] {
				return stats.TagStats[names[i]] > stats.TagStats[names[j]]
			}
			return names[i] < names[j]
		})
		if len(names) > 10 {
			names = names[:10]
		}
		parts := make([]string, 0, len(names))
		for _, name := range names {
			parts = append(parts, fmt.Sprintf("%s (%d)", name, stats.TagStats[name]))
		}
		fmt.Fprintf(&b, "- Most used tags: %s\n", strings.Join(parts, ", "))
	}

	return s.completer.Complete(ctx, []domain.ChatMessage{
		{
			Role: "system",
			Text: "You are the assistant of a collaborative image tagging platform. Answer questions about the user's collection using the provided statistics. Be concise and helpful.\n\n" + b.String(),
		},
		{Role: "user", Text: message},
	})
}

// fetchImageDataURL downloads the image and encodes it as a base64 data URL.
func (s *AssistService) fetchImageDataURL(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch image: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("image fetch returned status %d", resp.StatusCode)
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxImageBytes))
	if err != nil {
		return "", fmt.Errorf("failed to read image: %w", err)
	}
	return "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(data), nil
}

func orNone(tags []string) string {
	if len(tags) == 0 {
		return "None"
	}
	return strings.Join(tags, ", ")
}
