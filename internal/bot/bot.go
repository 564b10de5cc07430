// Package bot is the Discord surface: drop a resume file with the job
// description as the message text, get back a tailored resume.
package bot

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/saikat0506/Rezume-AI/internal/cleaner"
	"github.com/saikat0506/Rezume-AI/internal/extract"
	"github.com/saikat0506/Rezume-AI/internal/highlight"
	"github.com/saikat0506/Rezume-AI/internal/styles"
	"github.com/saikat0506/Rezume-AI/pkg/types"
)

const (
	maxAttachmentBytes = 10 << 20
	pipelineTimeout    = 2 * time.Minute
)

var resumeExtensions = map[string]bool{
	".txt":  true,
	".pdf":  true,
	".docx": true,
}

// Tailorer is the slice of the AI collaborator the bot needs.
type Tailorer interface {
	ExtractKeywords(ctx context.Context, jobDesc string) (string, error)
	Tailor(ctx context.Context, in types.TailorInput) (string, error)
	Review(ctx context.Context, tailoredResume, jobTitle, jobDesc string) (*types.Review, error)
}

type Bot struct {
	session *discordgo.Session
	ai      Tailorer
	styles  *styles.Registry
	clean   *cleaner.Cleaner
}

func New(token string, ai Tailorer, styleRegistry *styles.Registry) (*Bot, error) {
	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("error creating Discord session: %w", err)
	}
	bot := &Bot{
		session: session,
		ai:      ai,
		styles:  styleRegistry,
		clean:   cleaner.NewCleaner(),
	}
	session.AddHandler(bot.onMessageCreate)
	session.Identify.Intents = discordgo.IntentsGuildMessages | discordgo.IntentsMessageContent
	return bot, nil
}

func (b *Bot) Start() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("error opening Discord session: %w", err)
	}
	slog.Info("Bot is running...")
	return nil
}

func (b *Bot) Close() error {
	return b.session.Close()
}

func (b *Bot) onMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author.ID == s.State.User.ID {
		return
	}
	for _, att := range m.Attachments {
		if resumeExtensions[strings.ToLower(filepath.Ext(att.Filename))] {
			slog.Info("Received resume attachment", "filename", att.Filename, "author", m.Author.Username)
			go b.processResume(s, m, att)
			break
		}
	}
}

// processResume runs the tailoring pipeline for one message: the attachment
// is the resume, the message content is the job description.
func (b *Bot) processResume(s *discordgo.Session, m *discordgo.MessageCreate, att *discordgo.MessageAttachment) {
	s.MessageReactionAdd(m.ChannelID, m.ID, "⏳")

	jobDesc := strings.TrimSpace(m.Content)
	if jobDesc == "" {
		b.fail(s, m, fmt.Errorf("message text must contain the job description"))
		return
	}

	data, err := downloadAttachment(att.URL)
	if err != nil {
		b.fail(s, m, fmt.Errorf("failed to download attachment: %w", err))
		return
	}

	resumeText, err := extract.Text(att.Filename, att.ContentType, data)
	if err != nil {
		b.fail(s, m, err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), pipelineTimeout)
	defer cancel()

	keywords, err := b.ai.ExtractKeywords(ctx, jobDesc)
	if err != nil {
		slog.Warn("keyword extraction failed, tailoring without keywords", "error", err)
		keywords = ""
	}

	tailored, err := b.ai.Tailor(ctx, types.TailorInput{
		ResumeText:     resumeText,
		JobDescription: jobDesc,
		StyleGuidance:  b.styles.Guidance(styles.Standard),
		Keywords:       keywords,
	})
	if err != nil {
		b.fail(s, m, fmt.Errorf("resume tailoring failed: %w", err))
		return
	}

	segments, err := highlight.Diff(b.clean.NormalizeLines(resumeText), b.clean.NormalizeLines(tailored))
	if err != nil {
		b.fail(s, m, err)
		return
	}
	added, removed := highlight.Stats(segments)

	summary := fmt.Sprintf("Tailored your resume: %d words added, %d removed.", added, removed)
	if review, err := b.ai.Review(ctx, tailored, "", jobDesc); err != nil {
		slog.Warn("review failed, replying without score", "error", err)
	} else {
		summary += fmt.Sprintf(" ATS score: %d/100.\n%s", review.ATSScore, review.Review)
	}

	_, err = s.ChannelMessageSendComplex(m.ChannelID, &discordgo.MessageSend{
		Content: summary,
		Files: []*discordgo.File{{
			Name:        "tailored_resume.txt",
			ContentType: "text/plain",
			Reader:      strings.NewReader(tailored),
		}},
	})
	if err != nil {
		b.fail(s, m, fmt.Errorf("failed to send tailored resume: %w", err))
		return
	}

	s.MessageReactionsRemoveAll(m.ChannelID, m.ID)
	s.MessageReactionAdd(m.ChannelID, m.ID, "✅")
	slog.Info("Done processing!")
}

func (b *Bot) fail(s *discordgo.Session, m *discordgo.MessageCreate, err error) {
	slog.Error("Processing error", "error", err)
	s.MessageReactionRemove(m.ChannelID, m.ID, "⏳", s.State.User.ID)
	s.MessageReactionAdd(m.ChannelID, m.ID, "❌")
	s.ChannelMessageSend(m.ChannelID, fmt.Sprintf("Error: %v", err))
}

func downloadAttachment(url string) ([]byte, error) {
	resp, err := http.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("received non-200 response code: %d", resp.StatusCode)
	}

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, io.LimitReader(resp.Body, maxAttachmentBytes)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
