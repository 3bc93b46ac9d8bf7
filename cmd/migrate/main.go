package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"chatdb/config"
	"chatdb/internal/domain/channel"
	"chatdb/internal/redis"
	"chatdb/internal/repository"
	"chatdb/pkg/database"

	"gorm.io/gorm"
)

const usage = `
chatdb - Database CLI Tool

Usage:
  migrate [flags] command

Commands:
  up          Create the message table if missing
  down        Drop the message table (DANGEROUS)
  status      Show database connection status and dialect
  grant       Grant a channel right to a user (requires REDIS_HOST)
  revoke      Revoke a channel right from a user (requires REDIS_HOST)
  members     List users holding a channel right (requires REDIS_HOST)

Flags:
  -table string     Message table name (default "chat_messages")
  -user string      User id for grant/revoke
  -channel string   Channel id for grant/revoke/members
  -right string     READ or WRITE (default "READ")

Examples:
  go run cmd/migrate/main.go up
  go run cmd/migrate/main.go -user 1 -channel general -right write grant
`

func main() {
	table := flag.String("table", repository.DefaultTable, "Message table name")
	userID := flag.String("user", "", "User id for grant/revoke")
	channelID := flag.String("channel", "", "Channel id for grant/revoke/members")
	rightName := flag.String("right", "READ", "READ or WRITE")

	flag.Usage = func() {
		fmt.Print(usage)
	}
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}

	command := flag.Arg(0)
	cfg := config.LoadConfig()

	switch command {
	case "up", "down", "status":
		db, err := database.Connect(cfg)
		if err != nil {
			log.Fatalf("❌ %v", err)
		}
		err = runSchemaCommand(command, db, *table)
		if closeErr := database.Close(db); closeErr != nil {
			log.Printf("⚠️  Error closing database: %v", closeErr)
		}
		if err != nil {
			log.Fatalf("❌ %v", err)
		}
	case "grant", "revoke", "members":
		right, err := channel.ParseRight(*rightName)
		if err != nil {
			log.Fatalf("❌ %v", err)
		}
		runPolicyCommand(command, cfg, *channelID, *userID, right)
	default:
		fmt.Printf("Unknown command: %s\n", command)
		flag.Usage()
		os.Exit(1)
	}
}

func runSchemaCommand(command string, db *gorm.DB, table string) error {
	switch command {
	case "up":
		log.Printf("🚀 Creating table %s...", table)
		if err := repository.InitSchema(db, repository.WithTable(table)); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
		log.Println("✅ Migrations completed successfully!")
	case "down":
		log.Printf("🗑️  Dropping table %s...", table)
		if err := repository.DropSchema(db, repository.WithTable(table)); err != nil {
			return fmt.Errorf("drop failed: %w", err)
		}
		log.Println("✅ Table dropped")
	case "status":
		return showStatus(db, table)
	}
	return nil
}

func showStatus(db *gorm.DB, table string) error {
	log.Println("🔍 Checking database status...")

	if err := database.HealthCheck(context.Background(), db); err != nil {
		return fmt.Errorf("database connection failed: %w", err)
	}
	log.Println("✅ Database connection: OK")

	name := db.Dialector.Name()
	if d, err := repository.ParseDialect(name); err != nil {
		log.Printf("⚠️  %v", err)
	} else {
		expr, _ := d.NowUTC()
		log.Printf("✅ Dialect %s, insertion time from %s", d, expr)
	}

	if !db.Migrator().HasTable(table) {
		log.Printf("❌ Table %-20s does not exist", table)
		return nil
	}
	var count int64
	if err := db.Table(table).Count(&count).Error; err != nil {
		log.Printf("⚠️  Error counting table %s: %v", table, err)
		return nil
	}
	log.Printf("✅ Table %-20s exists (%d rows)", table, count)
	return nil
}

func runPolicyCommand(command string, cfg *config.Config, channelID, userID string, right channel.Right) {
	redisCfg := redis.Config{
		Host:     cfg.RedisHost,
		Port:     cfg.RedisPort,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	}
	if !redisCfg.Enabled() {
		log.Fatalf("❌ REDIS_HOST is not set")
	}
	if channelID == "" || (command != "members" && userID == "") {
		log.Fatalf("❌ -channel and -user are required")
	}

	ctx := context.Background()
	client, err := redis.Connect(ctx, redisCfg)
	if err != nil {
		log.Fatalf("❌ %v", err)
	}
	err = applyPolicyCommand(ctx, redis.NewAccessPolicyStore(client), command, channelID, userID, right)
	if closeErr := client.Close(); closeErr != nil {
		log.Printf("⚠️  Error closing Redis client: %v", closeErr)
	}
	if err != nil {
		log.Fatalf("❌ %v", err)
	}
}

func applyPolicyCommand(ctx context.Context, store *redis.AccessPolicyStore, command, channelID, userID string, right channel.Right) error {
	switch command {
	case "grant":
		if err := store.Grant(ctx, channelID, userID, right); err != nil {
			return fmt.Errorf("grant failed: %w", err)
		}
		log.Printf("✅ %s on %s granted to %s", right, channelID, userID)
	case "revoke":
		if err := store.Revoke(ctx, channelID, userID, right); err != nil {
			return fmt.Errorf("revoke failed: %w", err)
		}
		log.Printf("✅ %s on %s revoked from %s", right, channelID, userID)
	case "members":
		members, err := store.Members(ctx, channelID, right)
		if err != nil {
			return fmt.Errorf("listing failed: %w", err)
		}
		log.Printf("📊 %d user(s) hold %s on %s", len(members), right, channelID)
		for _, m := range members {
			log.Printf("   - %s", m)
		}
	}
	return nil
}
