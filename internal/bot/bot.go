package bot

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"tap_legends/internal/logger"
	"tap_legends/internal/service"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"golang.org/x/time/rate"
)

// Bot greets players and hands them the mini-app link. The referral code
// from the /start payload rides along in the link; the game applies it when
// the player authenticates inside the app.
type Bot struct {
	bot       *tgbotapi.BotAPI
	stats     *service.StatsService
	webAppURL string
	limiter   *rate.Limiter
	stopCh    chan struct{}
	wg        sync.WaitGroup
	log       *slog.Logger
}

func New(token, webAppURL string, stats *service.StatsService) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}

	log := logger.With("component", "bot")
	log.Info("bot authorized", "username", api.Self.UserName)

	return &Bot{
		bot:       api,
		stats:     stats,
		webAppURL: webAppURL,
		// Telegram allows ~30 messages per second for bots
		limiter: rate.NewLimiter(rate.Limit(25), 5),
		stopCh:  make(chan struct{}),
		log:     log,
	}, nil
}

// Start runs the update loop until Stop is called.
func (b *Bot) Start() {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.bot.GetUpdatesChan(u)
	b.log.Info("starting bot update loop")

	for {
		select {
		case <-b.stopCh:
			b.log.Info("stopping bot update loop")
			return
		case update, ok := <-updates:
			if !ok {
				return
			}

			if update.Message == nil || !update.Message.IsCommand() {
				continue
			}

			b.wg.Add(1)
			go func(msg *tgbotapi.Message) {
				defer b.wg.Done()
				b.handleCommand(msg)
			}(update.Message)
		}
	}
}

// Stop gracefully stops the bot.
func (b *Bot) Stop() {
	b.log.Info("stopping bot...")
	close(b.stopCh)
	b.bot.StopReceivingUpdates()

	done := make(chan struct{})
	go func() {
		b.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		b.log.Info("bot stopped gracefully")
	case <-time.After(10 * time.Second):
		b.log.Warn("bot shutdown timeout, some handlers may not have completed")
	}
}

func (b *Bot) handleCommand(msg *tgbotapi.Message) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	switch msg.Command() {
	case "start":
		b.handleStart(ctx, msg)
	case "help":
		b.send(ctx, b.helpReply(msg.Chat.ID))
	case "stats":
		b.send(ctx, tgbotapi.NewMessage(msg.Chat.ID, b.statsMessage(ctx)))
	default:
		b.send(ctx, tgbotapi.NewMessage(msg.Chat.ID, "Unknown command. Try /help."))
	}
}

func (b *Bot) handleStart(ctx context.Context, msg *tgbotapi.Message) {
	url := fmt.Sprintf("%s?tgid=%d", b.webAppURL, msg.From.ID)
	if code := msg.CommandArguments(); code != "" {
		url += "&ref=" + code
	}

	reply := tgbotapi.NewMessage(msg.Chat.ID, startMessage(msg.From.FirstName))
	reply.ParseMode = "HTML"
	reply.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.InlineKeyboardButton{
				Text:   "🎮 Play now",
				WebApp: &tgbotapi.WebAppInfo{URL: url},
			},
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonURL("📣 Community", "https://t.me/taplegends"),
		),
	)

	if err := b.send(ctx, reply); err != nil {
		b.log.Error("failed to send start reply", "chat_id", msg.Chat.ID, "error", err)
		fallback := tgbotapi.NewMessage(msg.Chat.ID, "Something went wrong, please try /start again.")
		b.send(ctx, fallback)
	}
}

func startMessage(firstName string) string {
	if firstName == "" {
		firstName = "legend"
	}
	return fmt.Sprintf(`👋 Welcome, <b>%s</b>!

Tap, earn coins, buy boosters and climb the leaderboard.

🪙 Invite friends with your referral link — both of you get a bonus.`, firstName)
}

func (b *Bot) helpReply(chatID int64) tgbotapi.MessageConfig {
	reply := tgbotapi.NewMessage(chatID, `<b>Commands</b>

/start - open the game
/stats - global game numbers
/help - this message`)
	reply.ParseMode = "HTML"
	return reply
}

func (b *Bot) statsMessage(ctx context.Context) string {
	stats, err := b.stats.Global(ctx)
	if err != nil {
		b.log.Error("failed to load global stats", "error", err)
		return "Stats are unavailable right now, try again later."
	}

	return fmt.Sprintf(`📊 Game stats

👥 Players: %d
👆 Taps: %d
🪙 Coins earned: %s`,
		stats.TotalUsers, stats.TotalTaps, stats.TotalBalance.String())
}

// send pushes a message through the shared rate limiter.
func (b *Bot) send(ctx context.Context, msg tgbotapi.MessageConfig) error {
	if err := b.limiter.Wait(ctx); err != nil {
		return err
	}
	_, err := b.bot.Send(msg)
	return err
}
