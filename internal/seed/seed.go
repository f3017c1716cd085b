// Package seed fills empty collections with demo records. Seeding is an
// explicit bootstrap step driven by configuration, never a side effect of
// reading a collection.
package seed

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/lifeboard/backend/domain"
	"github.com/lifeboard/backend/repository"
)

// Repositories lists the collections the seeder may fill.
type Repositories struct {
	Tasks         repository.TaskRepository
	Activities    repository.ActivityRepository
	Posts         repository.PostRepository
	Conversations repository.ConversationRepository
}

// Run inserts demo data into every empty collection. Non-empty collections
// are left untouched so user data is never mixed with samples.
func Run(ctx context.Context, repos Repositories, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}

	if err := seedTasks(ctx, repos.Tasks); err != nil {
		return fmt.Errorf("seed tasks: %w", err)
	}
	if err := seedActivities(ctx, repos.Activities); err != nil {
		return fmt.Errorf("seed activities: %w", err)
	}
	if err := seedPosts(ctx, repos.Posts); err != nil {
		return fmt.Errorf("seed posts: %w", err)
	}
	if err := seedConversations(ctx, repos.Conversations); err != nil {
		return fmt.Errorf("seed conversations: %w", err)
	}
	logger.Info("demo data seeded")
	return nil
}

func seedTasks(ctx context.Context, repo repository.TaskRepository) error {
	existing, err := repo.List(ctx)
	if err != nil || len(existing) > 0 {
		return err
	}

	now := time.Now()
	tomorrow := now.AddDate(0, 0, 1)
	nextWeek := now.AddDate(0, 0, 7)

	drafts := []domain.TaskDraft{
		{Title: "Review quarterly goals", Description: "Check progress against the Q1 roadmap", Priority: domain.PriorityHigh, DueDate: &tomorrow, Tags: []string{"planning"}},
		{Title: "Finish the onboarding deck", Priority: domain.PriorityMedium, DueDate: &nextWeek, Tags: []string{"work", "slides"}},
		{Title: "Book dentist appointment", Priority: domain.PriorityLow, Tags: []string{"personal"}},
		{Title: "Prepare demo for Friday", Description: "Live walkthrough of the new dashboard", Priority: domain.PriorityHigh, Tags: []string{"work"}},
		{Title: "Read the distributed systems paper", Priority: domain.PriorityMedium, Tags: []string{"study"}},
	}
	for i := len(drafts) - 1; i >= 0; i-- {
		if err := repo.Add(ctx, domain.NewTask(drafts[i])); err != nil {
			return err
		}
	}

	// One completed sample so the dashboard charts have data on day one.
	done := domain.NewTask(domain.TaskDraft{Title: "Set up the workspace", Priority: domain.PriorityLow})
	done.Toggle(now.Add(-2 * time.Hour))
	return repo.Add(ctx, done)
}

func seedActivities(ctx context.Context, repo repository.ActivityRepository) error {
	existing, err := repo.List(ctx)
	if err != nil || len(existing) > 0 {
		return err
	}

	now := time.Now()
	samples := []struct {
		title    string
		category domain.Category
		ago      time.Duration
		minutes  int
		tags     []string
	}{
		{"Morning run", domain.CategoryFitness, 3 * time.Hour, 45, []string{"cardio"}},
		{"Sprint planning", domain.CategoryWork, 26 * time.Hour, 60, []string{"meeting"}},
		{"React course, module 4", domain.CategoryStudy, 30 * time.Hour, 90, []string{"frontend"}},
		{"Portfolio review", domain.CategoryTrading, 2 * 24 * time.Hour, 40, nil},
		{"Meal prep", domain.CategoryPersonal, 3 * 24 * time.Hour, 50, nil},
		{"Gym session", domain.CategoryFitness, 5 * 24 * time.Hour, 70, []string{"strength"}},
	}
	for i := len(samples) - 1; i >= 0; i-- {
		s := samples[i]
		date := now.Add(-s.ago)
		if err := repo.Add(ctx, domain.NewActivity(domain.ActivityDraft{
			Title:    s.title,
			Category: s.category,
			Date:     &date,
			Duration: s.minutes,
			Tags:     s.tags,
		})); err != nil {
			return err
		}
	}
	return nil
}

func seedPosts(ctx context.Context, repo repository.PostRepository) error {
	existing, err := repo.List(ctx)
	if err != nil || len(existing) > 0 {
		return err
	}

	samples := []struct {
		author, title, body string
		likes, comments     int
		tags                []string
	}{
		{"Sarah Chen", "Completed My First Marathon!", "After 6 months of training, I finally crossed that finish line today. Time to celebrate and rest those legs!", 34, 8, []string{"Fitness", "Achievement"}},
		{"Alex Johnson", "New Trading Strategy Working Well", "Two weeks into a momentum-based strategy with a 68% win rate. Keeping position sizes small for now.", 21, 5, []string{"Trading", "Reflection"}},
		{"Maya Patel", "Finished React Advanced Patterns Course", "Compound components, render props, custom hooks. Time to apply all of it.", 12, 3, []string{"Study", "Achievement"}},
		{"David Kim", "Morning Meditation Routine", "A 20-minute session brings so much clarity to the rest of the day. Start small if you're new to it.", 7, 2, []string{"Personal", "Reflection"}},
		{"Emma Wilson", "Launched My Side Project!", "Three months of evenings and weekends, finally deployed. Would love feedback from the community!", 45, 12, []string{"Work", "Achievement"}},
	}
	for i := len(samples) - 1; i >= 0; i-- {
		s := samples[i]
		post := domain.NewPost(domain.PostDraft{
			Author: s.author,
			Avatar: avatarFor(s.author),
			Title:  s.title,
			Body:   s.body,
			Tags:   s.tags,
		})
		post.Likes = s.likes
		post.Comments = s.comments
		if err := repo.Add(ctx, post); err != nil {
			return err
		}
	}
	return nil
}

func seedConversations(ctx context.Context, repo repository.ConversationRepository) error {
	existing, err := repo.List(ctx)
	if err != nil || len(existing) > 0 {
		return err
	}

	samples := []struct {
		name   string
		status domain.PresenceStatus
		thread []struct {
			sender domain.Sender
			text   string
		}
		unread int
	}{
		{
			name:   "Sarah Chen",
			status: domain.StatusOnline,
			thread: []struct {
				sender domain.Sender
				text   string
			}{
				{domain.SenderThem, "Hey! How are you doing?"},
				{domain.SenderMe, "I'm great! Just finished a big project. How about you?"},
				{domain.SenderThem, "That's awesome! I've been working on the new dashboard features."},
				{domain.SenderThem, "I'll send you a demo link soon!"},
			},
			unread: 2,
		},
		{
			name:   "Alex Johnson",
			status: domain.StatusOffline,
			thread: []struct {
				sender domain.Sender
				text   string
			}{
				{domain.SenderMe, "Quick question about the API endpoint"},
				{domain.SenderThem, "Sure, what's up?"},
				{domain.SenderMe, "Should we use REST or GraphQL for the new feature?"},
				{domain.SenderThem, "I think GraphQL would be better for this use case."},
			},
			unread: 1,
		},
		{
			name:   "Maya Patel",
			status: domain.StatusOnline,
			thread: []struct {
				sender domain.Sender
				text   string
			}{
				{domain.SenderThem, "Coffee tomorrow morning?"},
				{domain.SenderMe, "Sounds good! 9 AM at the usual place?"},
				{domain.SenderThem, "Perfect! See you then"},
			},
			unread: 0,
		},
	}
	for i := len(samples) - 1; i >= 0; i-- {
		s := samples[i]
		conv := domain.NewConversation(domain.ConversationDraft{
			Name:   s.name,
			Avatar: avatarFor(s.name),
			Status: s.status,
		})
		for _, m := range s.thread {
			conv.Append(m.sender, m.text)
		}
		conv.Unread = s.unread
		if err := repo.Add(ctx, conv); err != nil {
			return err
		}
	}
	return nil
}

func avatarFor(name string) string {
	initials := ""
	for _, part := range []byte(name) {
		if part >= 'A' && part <= 'Z' {
			initials += string(part)
		}
	}
	return "https://api.dicebear.com/7.x/avataaars/svg?seed=" + initials
}
