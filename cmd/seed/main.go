// Package main provides demo data seeding for PlanWise.
//
// Seeding is idempotent: users already present (by email) are skipped
// entirely. A custom dataset can be supplied as a YAML file.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"

	"planwise.io/planwise/ent"
	entuser "planwise.io/planwise/ent/user"
	"planwise.io/planwise/internal/config"
	"planwise.io/planwise/internal/infrastructure"
	"planwise.io/planwise/internal/pkg/logger"
)

// defaultDataset is used when no -file is given.
const defaultDataset = `
users:
  - email: demo@planwise.io
    name: Demo User
    password: demo-password
    settings:
      marketing_emails: true
    events:
      - title: Team standup
        description: Daily sync with the team
        in_hours: 1
        time: "09:30"
        location: Meeting room 2
      - title: Dentist appointment
        in_hours: 26
        time: "11:00"
      - title: Quarterly planning
        description: Q3 roadmap review
        in_hours: 72
        location: Main office
`

type seedFile struct {
	Users []seedUser `yaml:"users"`
}

type seedUser struct {
	Email    string        `yaml:"email"`
	Name     string        `yaml:"name"`
	Password string        `yaml:"password"`
	Settings *seedSettings `yaml:"settings"`
	Events   []seedEvent   `yaml:"events"`
}

type seedSettings struct {
	EmailNotifications  *bool `yaml:"email_notifications"`
	PushNotifications   *bool `yaml:"push_notifications"`
	EventReminders      *bool `yaml:"event_reminders"`
	MarketingEmails     *bool `yaml:"marketing_emails"`
	ReminderLeadMinutes *int  `yaml:"reminder_lead_minutes"`
}

type seedEvent struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	// InHours places the event relative to seeding time, so seeded data
	// always has upcoming events for the reminder scan to find.
	InHours  float64 `yaml:"in_hours"`
	Time     string  `yaml:"time"`
	Location string  `yaml:"location"`
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "seed error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	file := flag.String("file", "", "YAML dataset to seed (default: built-in demo data)")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if err := logger.Init(cfg.Log.Level, cfg.Log.Format); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync()

	dataset, err := loadDataset(*file)
	if err != nil {
		return err
	}

	ctx := context.Background()

	db, err := infrastructure.NewDatabaseClients(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("init database: %w", err)
	}
	defer db.Close()

	logger.Info("Starting data seeding...", zap.Int("users", len(dataset.Users)))

	for _, u := range dataset.Users {
		if err := seedOneUser(ctx, db.EntClient, u); err != nil {
			return fmt.Errorf("seed user %s: %w", u.Email, err)
		}
	}

	logger.Info("Data seeding completed successfully")
	return nil
}

func loadDataset(path string) (*seedFile, error) {
	raw := []byte(defaultDataset)
	if path != "" {
		var err error
		raw, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read dataset %s: %w", path, err)
		}
	}

	var dataset seedFile
	if err := yaml.Unmarshal(raw, &dataset); err != nil {
		return nil, fmt.Errorf("parse dataset: %w", err)
	}
	for _, u := range dataset.Users {
		if u.Email == "" || u.Password == "" {
			return nil, fmt.Errorf("dataset user missing email or password")
		}
	}
	return &dataset, nil
}

func seedOneUser(ctx context.Context, client *ent.Client, u seedUser) error {
	exists, err := client.User.Query().
		Where(entuser.EmailEQ(u.Email)).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("check existing user: %w", err)
	}
	if exists {
		logger.Info("user already seeded, skipping", zap.String("email", u.Email))
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), 12)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	userID := uuid.Must(uuid.NewV7()).String()
	if _, err := client.User.Create().
		SetID(userID).
		SetEmail(u.Email).
		SetName(u.Name).
		SetPasswordHash(string(hash)).
		Save(ctx); err != nil {
		return fmt.Errorf("create user: %w", err)
	}

	settings := client.NotificationSettings.Create().
		SetID(uuid.Must(uuid.NewV7()).String()).
		SetUserID(userID)
	if u.Settings != nil {
		if u.Settings.EmailNotifications != nil {
			settings.SetEmailNotifications(*u.Settings.EmailNotifications)
		}
		if u.Settings.PushNotifications != nil {
			settings.SetPushNotifications(*u.Settings.PushNotifications)
		}
		if u.Settings.EventReminders != nil {
			settings.SetEventReminders(*u.Settings.EventReminders)
		}
		if u.Settings.MarketingEmails != nil {
			settings.SetMarketingEmails(*u.Settings.MarketingEmails)
		}
		if u.Settings.ReminderLeadMinutes != nil {
			settings.SetReminderLeadMinutes(*u.Settings.ReminderLeadMinutes)
		}
	}
	if _, err := settings.Save(ctx); err != nil {
		return fmt.Errorf("create settings: %w", err)
	}

	now := time.Now().UTC()
	for _, ev := range u.Events {
		if _, err := client.Event.Create().
			SetID(uuid.Must(uuid.NewV7()).String()).
			SetTitle(ev.Title).
			SetDescription(ev.Description).
			SetDate(now.Add(time.Duration(ev.InHours * float64(time.Hour)))).
			SetTime(ev.Time).
			SetLocation(ev.Location).
			SetOwnerID(userID).
			Save(ctx); err != nil {
			return fmt.Errorf("create event %q: %w", ev.Title, err)
		}
	}

	logger.Info("user seeded",
		zap.String("email", u.Email),
		zap.Int("events", len(u.Events)),
	)
	return nil
}
