package notifier

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/rs/zerolog/log"
)

const (
	// mediaGroupLimit is Telegram's cap on photos per sendMediaGroup call.
	mediaGroupLimit = 10

	textSendTimeout  = 10 * time.Second
	mediaSendTimeout = 60 * time.Second
)

// Telegram delivers report pages and chart images to a single chat.
type Telegram struct {
	bot    *bot.Bot
	chatID any
}

// NewTelegram builds a sender for the given bot token and chat. Numeric
// chat IDs are passed as integers, anything else as a channel username.
func NewTelegram(token, chatID string) (*Telegram, error) {
	b, err := bot.New(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}
	return &Telegram{bot: b, chatID: parseChatID(chatID)}, nil
}

func parseChatID(chatID string) any {
	if id, err := strconv.ParseInt(chatID, 10, 64); err == nil {
		return id
	}
	return chatID
}

// SendPage splits a page into Telegram-sized chunks and sends them in
// order. Empty pages are skipped.
func (t *Telegram) SendPage(ctx context.Context, page string) error {
	if strings.TrimSpace(page) == "" {
		return nil
	}
	for _, chunk := range Split(page, MaxChunkLen) {
		if err := t.sendChunk(ctx, chunk); err != nil {
			return err
		}
	}
	return nil
}

func (t *Telegram) sendChunk(ctx context.Context, text string) error {
	sendCtx, cancel := context.WithTimeout(ctx, textSendTimeout)
	defer cancel()

	_, err := t.bot.SendMessage(sendCtx, &bot.SendMessageParams{
		ChatID:    t.chatID,
		Text:      text,
		ParseMode: models.ParseModeHTML,
	})
	if err == nil {
		return nil
	}
	if !isEntityError(err) {
		return fmt.Errorf("send message: %w", err)
	}

	// Chunking can cut through a tag pair; retry once without markup
	// rather than dropping the content.
	log.Warn().Err(err).Msg("html rejected, retrying as plain text")
	retryCtx, cancel := context.WithTimeout(ctx, textSendTimeout)
	defer cancel()
	_, err = t.bot.SendMessage(retryCtx, &bot.SendMessageParams{
		ChatID: t.chatID,
		Text:   StripHTML(text),
	})
	if err != nil {
		return fmt.Errorf("send plain message: %w", err)
	}
	return nil
}

func isEntityError(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "parse entities") || strings.Contains(msg, "entity")
}

// SendPhotos uploads the given image files as media groups of up to ten
// photos each.
func (t *Telegram) SendPhotos(ctx context.Context, paths []string) error {
	for start := 0; start < len(paths); start += mediaGroupLimit {
		end := start + mediaGroupLimit
		if end > len(paths) {
			end = len(paths)
		}
		if err := t.sendMediaGroup(ctx, paths[start:end]); err != nil {
			return err
		}
	}
	return nil
}

func (t *Telegram) sendMediaGroup(ctx context.Context, paths []string) error {
	media := make([]models.InputMedia, 0, len(paths))
	var files []*os.File
	defer func() {
		for _, f := range files {
			f.Close()
		}
	}()

	for i, path := range paths {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("open chart %s: %w", filepath.Base(path), err)
		}
		files = append(files, f)
		media = append(media, &models.InputMediaPhoto{
			Media:           fmt.Sprintf("attach://photo_%d", i),
			MediaAttachment: f,
		})
	}

	sendCtx, cancel := context.WithTimeout(ctx, mediaSendTimeout)
	defer cancel()
	_, err := t.bot.SendMediaGroup(sendCtx, &bot.SendMediaGroupParams{
		ChatID: t.chatID,
		Media:  media,
	})
	if err != nil {
		return fmt.Errorf("send media group: %w", err)
	}
	return nil
}
