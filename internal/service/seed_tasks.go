package service

import (
	"context"

	"tap_legends/internal/domain"
)

// Initial promo task catalog. Seeded once via SeedTasks.
var seedTasks = []domain.EarnTask{
	{ID: 1, Link: "https://x.com/taplegends", Category: domain.TaskCategoryX, Reward: 5000},
	{ID: 2, Link: "https://t.me/taplegends", Category: domain.TaskCategoryTelegram, Reward: 1000},
	{ID: 3, Link: "https://www.instagram.com/taplegends", Category: domain.TaskCategoryInstagram, Reward: 1000},
	{ID: 4, Link: "https://www.youtube.com/@taplegends", Category: domain.TaskCategoryYouTube, Reward: 1000},
	{ID: 5, Link: "https://discord.gg/taplegends", Category: domain.TaskCategoryDiscord, Reward: 1000},
	{ID: 6, Link: "https://www.tiktok.com/@taplegends", Category: domain.TaskCategoryTikTok, Reward: 1000},
	{ID: 7, Link: "https://www.reddit.com/r/taplegends", Category: domain.TaskCategoryReddit, Reward: 1000},
}

// SeedTasks bootstraps the task catalog. Fails when tasks already exist;
// not part of steady-state operation.
func (s *GameService) SeedTasks(ctx context.Context) ([]domain.EarnTask, error) {
	n, err := s.tasks.Count(ctx)
	if err != nil {
		return nil, err
	}
	if n > 0 {
		return nil, ErrTasksAlreadySeeded
	}

	if err := s.tasks.InsertAll(ctx, seedTasks); err != nil {
		return nil, err
	}
	return seedTasks, nil
}
