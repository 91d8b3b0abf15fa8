package bot

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"okcoin_backend/internal/domain"
	"okcoin_backend/internal/logger"
	"okcoin_backend/internal/service"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// GameBot is the chat presentation adapter: it translates Telegram
// commands and button presses into game service calls. The mapping from
// Telegram ids to game user ids is owned here and never leaves the bot.
type GameBot struct {
	bot         *tgbotapi.BotAPI
	game        *service.GameService
	botUsername string
	topLimit    int
	stopCh      chan struct{}
	wg          sync.WaitGroup
	log         *slog.Logger

	mu      sync.Mutex
	tgUsers map[int64]int64 // telegram id -> game user id
}

func NewGameBot(token, botUsername string, topLimit int, game *service.GameService) (*GameBot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}

	if topLimit <= 0 {
		topLimit = 10
	}

	log := logger.With("component", "game_bot")
	log.Info("bot authorized", "username", api.Self.UserName)

	return &GameBot{
		bot:         api,
		game:        game,
		botUsername: botUsername,
		topLimit:    topLimit,
		stopCh:      make(chan struct{}),
		log:         log,
		tgUsers:     make(map[int64]int64),
	}, nil
}

// Start runs the update loop until Stop is called.
func (b *GameBot) Start() {
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

			switch {
			case update.Message != nil && update.Message.IsCommand():
				b.wg.Add(1)
				go func(msg *tgbotapi.Message) {
					defer b.wg.Done()
					b.handleCommand(msg)
				}(update.Message)
			case update.CallbackQuery != nil:
				b.wg.Add(1)
				go func(q *tgbotapi.CallbackQuery) {
					defer b.wg.Done()
					b.handleCallback(q)
				}(update.CallbackQuery)
			}
		}
	}
}

// Stop gracefully stops the bot
func (b *GameBot) Stop() {
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

// registerUser creates (or finds) the game user for a Telegram account
// and remembers the mapping.
func (b *GameBot) registerUser(from *tgbotapi.User) *domain.User {
	username := from.UserName
	if username == "" {
		username = fmt.Sprintf("user%d", from.ID)
	}

	u := b.game.CreateOrGetUser(username)

	b.mu.Lock()
	b.tgUsers[from.ID] = u.ID
	b.mu.Unlock()

	return u
}

// knownUser returns the game user previously registered for a Telegram
// account, nil if the account never sent /start.
func (b *GameBot) knownUser(tgID int64) *domain.User {
	b.mu.Lock()
	userID, ok := b.tgUsers[tgID]
	b.mu.Unlock()
	if !ok {
		return nil
	}

	u, err := b.game.GetUser(userID)
	if err != nil {
		return nil
	}
	return u
}

func (b *GameBot) handleCommand(msg *tgbotapi.Message) {
	if msg.From == nil {
		return
	}

	switch msg.Command() {
	case "start":
		u := b.registerUser(msg.From)
		reply := tgbotapi.NewMessage(msg.Chat.ID, welcomeMessage(u))
		reply.ReplyMarkup = playKeyboard()
		b.send(reply)

	case "tap":
		u := b.knownUser(msg.From.ID)
		if u == nil {
			b.send(tgbotapi.NewMessage(msg.Chat.ID, msgPressStart))
			return
		}

		tapped, err := b.game.Tap(u.ID)
		if err != nil {
			b.send(tgbotapi.NewMessage(msg.Chat.ID, noEnergyMessage(u)))
			return
		}
		b.send(tgbotapi.NewMessage(msg.Chat.ID, tapMessage(tapped)))

	case "balance":
		u := b.knownUser(msg.From.ID)
		if u == nil {
			b.send(tgbotapi.NewMessage(msg.Chat.ID, msgPressStart))
			return
		}
		b.send(tgbotapi.NewMessage(msg.Chat.ID, balanceMessage(u)))

	case "referral":
		u := b.knownUser(msg.From.ID)
		if u == nil {
			b.send(tgbotapi.NewMessage(msg.Chat.ID, msgPressStart))
			return
		}

		reply := tgbotapi.NewMessage(msg.Chat.ID, referralMessage(u, b.botUsername))
		b.send(reply)

	case "leaderboard":
		top := b.game.Leaderboard(b.topLimit)
		b.send(tgbotapi.NewMessage(msg.Chat.ID, leaderboardMessage(top)))
	}
}

func (b *GameBot) handleCallback(q *tgbotapi.CallbackQuery) {
	if q.Message == nil || q.From == nil {
		return
	}
	chatID := q.Message.Chat.ID

	switch q.Data {
	case "play_game":
		u := b.knownUser(q.From.ID)
		if u == nil {
			b.answer(q.ID, msgPressStart, true)
			return
		}

		reply := tgbotapi.NewMessage(chatID, gamePanelMessage(u))
		reply.ReplyMarkup = gameKeyboard()
		b.send(reply)
		b.answer(q.ID, "", false)

	case "tap_coin":
		u := b.knownUser(q.From.ID)
		if u == nil {
			b.answer(q.ID, msgPressStart, true)
			return
		}

		tapped, err := b.game.Tap(u.ID)
		if err != nil {
			b.answer(q.ID, fmt.Sprintf("⚡ Недостаточно энергии! (%d/%d)", u.Energy, u.MaxEnergy), true)
			return
		}

		b.answer(q.ID, fmt.Sprintf("💰 +%d монет!", tapped.CoinsPerTap), false)

		edit := tgbotapi.NewEditMessageText(chatID, q.Message.MessageID, gamePanelMessage(tapped))
		kb := gameKeyboard()
		edit.ReplyMarkup = &kb
		if _, err := b.bot.Send(edit); err != nil {
			b.log.Error("error editing message", "error", err)
		}

	case "show_balance":
		u := b.knownUser(q.From.ID)
		if u == nil {
			b.answer(q.ID, msgPressStart, true)
			return
		}
		b.answer(q.ID, fmt.Sprintf("💰 %d монет | ⚡ %d/%d энергии", u.Coins, u.Energy, u.MaxEnergy), true)
	}
}

func (b *GameBot) send(msg tgbotapi.MessageConfig) {
	if _, err := b.bot.Send(msg); err != nil {
		b.log.Error("error sending message", "error", err)
	}
}

func (b *GameBot) answer(callbackID, text string, alert bool) {
	cb := tgbotapi.NewCallback(callbackID, text)
	cb.ShowAlert = alert
	if _, err := b.bot.Request(cb); err != nil {
		b.log.Error("error answering callback", "error", err)
	}
}
