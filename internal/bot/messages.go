package bot

import (
	"fmt"
	"strings"

	"okcoin_backend/internal/domain"
	"okcoin_backend/internal/service"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const msgPressStart = "Сначала нажмите /start чтобы начать игру!"

func welcomeMessage(u *domain.User) string {
	return fmt.Sprintf(`🎮 Добро пожаловать в OK Coin!

💰 Текущий баланс: %d монет
⚡ Энергия: %d/%d
🏆 Уровень: %d

Команды:
💎 /tap - получить монеты (стоит 1 энергию)
💰 /balance - проверить баланс
👥 /referral - пригласить друзей
🏆 /leaderboard - таблица лидеров`, u.Coins, u.Energy, u.MaxEnergy, u.Level)
}

func tapMessage(u *domain.User) string {
	return fmt.Sprintf(`💰 +%d монет!

💎 Баланс: %d монет
⚡ Энергия: %d/%d
📊 Всего тапов: %d`, u.CoinsPerTap, u.Coins, u.Energy, u.MaxEnergy, u.TotalTaps)
}

func noEnergyMessage(u *domain.User) string {
	return fmt.Sprintf(`⚡ Недостаточно энергии!

Текущая энергия: %d/%d
💡 Энергия восстанавливается по 1 в секунду`, u.Energy, u.MaxEnergy)
}

func balanceMessage(u *domain.User) string {
	return fmt.Sprintf(`💰 Ваш баланс: %d монет
⚡ Энергия: %d/%d
📊 Всего тапов: %d
👥 Рефералов: %d`, u.Coins, u.Energy, u.MaxEnergy, u.TotalTaps, u.ReferralCount)
}

func referralMessage(u *domain.User, botUsername string) string {
	link := fmt.Sprintf("https://t.me/%s?start=ref%d", botUsername, u.ID)

	return fmt.Sprintf(`👥 Пригласите друзей и получите бонусы!

🔗 Ваша реферальная ссылка:
%s

💰 За каждого друга: +%d монет
🎁 Друг получает: +%d монет
👥 Приглашено: %d друзей
💎 Заработано: %d монет`,
		link, service.DefaultReferralReward, service.ReferredBonus,
		u.ReferralCount, u.ReferralEarnings)
}

func leaderboardMessage(top []service.LeaderboardEntry) string {
	var sb strings.Builder
	sb.WriteString("🏆 Таблица лидеров:\n\n")

	if len(top) == 0 {
		sb.WriteString("Пока никого нет. Будьте первым!")
		return sb.String()
	}

	medals := []string{"🥇", "🥈", "🥉"}
	for i, e := range top {
		medal := fmt.Sprintf("%d.", e.Rank)
		if i < len(medals) {
			medal = medals[i]
		}
		sb.WriteString(fmt.Sprintf("%s %s - %d монет\n", medal, e.Username, e.Coins))
	}
	return sb.String()
}

func gamePanelMessage(u *domain.User) string {
	return fmt.Sprintf(`🎮 OK Coin - Игровая панель

💰 Баланс: %d монет
⚡ Энергия: %d/%d
🏆 Уровень: %d
📊 Всего тапов: %d

Нажмите кнопку OK чтобы заработать монеты!`,
		u.Coins, u.Energy, u.MaxEnergy, u.Level, u.TotalTaps)
}

func playKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🎮 Играть OK Coin", "play_game"),
		),
	)
}

func gameKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✅ OK (+1 монета)", "tap_coin"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("💰 Баланс", "show_balance"),
			tgbotapi.NewInlineKeyboardButtonData("👥 Рефералы", "show_referrals"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📋 Задания", "show_tasks"),
			tgbotapi.NewInlineKeyboardButtonData("🏆 Лидеры", "show_leaderboard"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔄 Обновить", "play_game"),
		),
	)
}
