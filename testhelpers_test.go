//go:build integration

package main_test

import (
	"context"
	"fmt"
	"net"
	"strconv"
	"testing"
	"time"

	"github.com/google/uuid"
	kafkago "github.com/segmentio/kafka-go"
	"github.com/shareit-hub/service-shareit/internal/application"
	"github.com/shareit-hub/service-shareit/internal/events"
	"github.com/shareit-hub/service-shareit/internal/platform/clock"
	"github.com/shareit-hub/service-shareit/internal/platform/database"
	"github.com/shareit-hub/service-shareit/internal/platform/kafka"
	"github.com/shareit-hub/service-shareit/internal/repository"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	kafkamodule "github.com/testcontainers/testcontainers-go/modules/kafka"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// setupPostgres starts a PostgreSQL container, applies the SQL migrations
// and returns a connected GORM DB.
func setupPostgres(t *testing.T) *gorm.DB {
	t.Helper()
	ctx := context.Background()

	pgReq := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "test",
			"POSTGRES_PASSWORD": "test",
			"POSTGRES_DB":       "test_shareit",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}
	pgContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: pgReq,
		Started:          true,
	})
	require.NoError(t, err, "failed to start PostgreSQL container")
	t.Cleanup(func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate PostgreSQL container: %v", err)
		}
	})

	pgHost, err := pgContainer.Host(ctx)
	require.NoError(t, err)
	pgPort, err := pgContainer.MappedPort(ctx, "5432")
	require.NoError(t, err)

	cfg := database.PostgresConfig{
		Host:     pgHost,
		Port:     pgPort.Port(),
		User:     "test",
		Password: "test",
		DBName:   "test_shareit",
		SSLMode:  "disable",
	}
	log := zap.NewNop()

	// Poll until the database accepts connections.
	var db *gorm.DB
	require.Eventually(t, func() bool {
		var err error
		db, err = database.Connect(cfg, log)
		return err == nil
	}, 30*time.Second, time.Second, "PostgreSQL not ready for connections")

	require.NoError(t, database.RunMigrations(cfg.DatabaseURL(), "migrations", log))
	return db
}

// setupKafka starts a Kafka container with the booking topic created.
func setupKafka(t *testing.T) []string {
	t.Helper()
	ctx := context.Background()

	kafkaContainer, err := kafkamodule.Run(ctx, "confluentinc/confluent-local:7.5.0")
	require.NoError(t, err, "failed to start Kafka container")
	t.Cleanup(func() {
		if err := kafkaContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate Kafka container: %v", err)
		}
	})

	brokers, err := kafkaContainer.Brokers(ctx)
	require.NoError(t, err, "failed to get Kafka brokers")

	createTopics(t, brokers, events.TopicBookingEvents)
	return brokers
}

// shareitStack holds the services wired over real repositories.
type shareitStack struct {
	Users    *application.UserService
	Items    *application.ItemService
	Requests *application.ItemRequestService
	Bookings *application.BookingService
	Repo     *repository.GormBookingRepository
}

// setupStack wires every service over db with a pinned clock. A nil
// publisher drops events.
func setupStack(t *testing.T, db *gorm.DB, publisher application.EventPublisher, now time.Time) *shareitStack {
	t.Helper()
	log := zap.NewNop()
	if publisher == nil {
		publisher = kafka.NoopPublisher{}
	}

	userRepo := repository.NewGormUserRepository(db)
	itemRepo := repository.NewGormItemRepository(db)
	commentRepo := repository.NewGormCommentRepository(db)
	requestRepo := repository.NewGormItemRequestRepository(db)
	bookingRepo := repository.NewGormBookingRepository(db)
	tx := database.NewTransactor(db)
	clk := clock.Fixed(now)

	return &shareitStack{
		Users:    application.NewUserService(userRepo, log),
		Items:    application.NewItemService(tx, itemRepo, commentRepo, bookingRepo, userRepo, requestRepo, clk, log),
		Requests: application.NewItemRequestService(requestRepo, itemRepo, userRepo, clk, log),
		Bookings: application.NewBookingService(tx, bookingRepo, userRepo, itemRepo, publisher, events.TopicBookingEvents, clk, log),
		Repo:     bookingRepo,
	}
}

func seedUser(t *testing.T, s *shareitStack, name string) int64 {
	t.Helper()
	u, err := s.Users.Create(context.Background(), application.CreateUserRequest{
		Name:  name,
		Email: fmt.Sprintf("%s-%s@example.com", name, uuid.NewString()[:8]),
	})
	require.NoError(t, err)
	return u.ID
}

func seedItem(t *testing.T, s *shareitStack, ownerID int64, name, description string, available bool) int64 {
	t.Helper()
	it, err := s.Items.Create(context.Background(), ownerID, application.CreateItemRequest{
		Name:        name,
		Description: description,
		Available:   &available,
	})
	require.NoError(t, err)
	return it.ID
}

func seedBooking(t *testing.T, s *shareitStack, bookerID, itemID int64, start, end time.Time) int64 {
	t.Helper()
	bk, err := s.Bookings.Create(context.Background(), bookerID, application.CreateBookingRequest{
		ItemID: itemID,
		Start:  start,
		End:    end,
	})
	require.NoError(t, err)
	return bk.ID
}

// consumeOneEvent reads from a Kafka topic until it finds an event of the
// expected type about subjectID.
func consumeOneEvent(t *testing.T, brokers []string, topic, expectedType string, subjectID int64, timeout time.Duration) kafka.CloudEvent {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:     brokers,
		GroupID:     "test-assert-" + uuid.NewString()[:8],
		Topic:       topic,
		MinBytes:    1,
		MaxBytes:    10e6,
		StartOffset: kafkago.FirstOffset,
	})
	defer func() { _ = reader.Close() }()

	subject := strconv.FormatInt(subjectID, 10)
	for {
		msg, err := reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				t.Fatalf("timed out waiting for event type %q on topic %q", expectedType, topic)
			}
			continue
		}
		ce, err := kafka.ParseCloudEvent(msg.Value)
		if err != nil {
			continue
		}
		if ce.Type == expectedType && ce.Subject == subject {
			return ce
		}
	}
}

// createTopics pre-creates Kafka topics so producers don't fail with "Unknown Topic".
func createTopics(t *testing.T, brokers []string, topics ...string) {
	t.Helper()
	conn, err := kafkago.Dial("tcp", brokers[0])
	require.NoError(t, err, "failed to dial Kafka for topic creation")
	defer conn.Close()

	controller, err := conn.Controller()
	require.NoError(t, err, "failed to get Kafka controller")

	controllerConn, err := kafkago.Dial("tcp", net.JoinHostPort(controller.Host, strconv.Itoa(controller.Port)))
	require.NoError(t, err, "failed to connect to Kafka controller")
	defer controllerConn.Close()

	topicConfigs := make([]kafkago.TopicConfig, len(topics))
	for i, topic := range topics {
		topicConfigs[i] = kafkago.TopicConfig{
			Topic:             topic,
			NumPartitions:     1,
			ReplicationFactor: 1,
		}
	}
	require.NoError(t, controllerConn.CreateTopics(topicConfigs...), "failed to create Kafka topics")

	// Give Kafka a moment to propagate topic metadata.
	time.Sleep(time.Second)
}
