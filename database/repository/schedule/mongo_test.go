//go:build mongo

package scheduleRepo

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"cityconnect/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tcmongodb "github.com/testcontainers/testcontainers-go/modules/mongodb"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var testMongo *mongo.Client

// TestMain connects to MONGO_TEST_URI when set, otherwise starts a MongoDB
// container for the run.
func TestMain(m *testing.M) {
	ctx := context.Background()

	var container *tcmongodb.MongoDBContainer
	uri := os.Getenv("MONGO_TEST_URI")
	if uri == "" {
		c, err := tcmongodb.Run(ctx, "mongo:7")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to start MongoDB container: %v\n", err)
			os.Exit(1)
		}
		container = c
		uri, err = c.ConnectionString(ctx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to get connection string: %v\n", err)
			_ = c.Terminate(ctx)
			os.Exit(1)
		}
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to connect to MongoDB: %v\n", err)
		if container != nil {
			_ = container.Terminate(ctx)
		}
		os.Exit(1)
	}
	testMongo = client

	code := m.Run()

	_ = client.Disconnect(ctx)
	if container != nil {
		_ = container.Terminate(ctx)
	}
	os.Exit(code)
}

// newMongoRepo returns a repository over a database private to the test.
func newMongoRepo(t *testing.T) ScheduleRepository {
	t.Helper()
	name := "cc_" + strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db := testMongo.Database(name)
	t.Cleanup(func() { _ = db.Drop(context.Background()) })
	return NewMongoScheduleRepo(db)
}

func seedMongo(t *testing.T, repo ScheduleRepository) {
	t.Helper()
	require.NoError(t, repo.WriteAll(context.Background(), []models.ScheduleEntry{
		{ParkName: "Roosevelt Park", Date: "6/1/2025", TimeSlot: "10:00-11:00", Status: models.SlotAvailable},
		{ParkName: "Roosevelt Park", Date: "2025-06-01", TimeSlot: "11:00-12:00", Status: models.SlotAvailable},
		{ParkName: "Roosevelt Park", Date: "2025-06-02", TimeSlot: "10:00-11:00", Status: models.SlotBooked},
		{ParkName: "Watson Park", Date: "2025-06-03", TimeSlot: "09:00-10:00", Status: models.SlotAvailable},
	}))
}

var june1 = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

func TestMongoSchedule_Queries(t *testing.T) {
	repo := newMongoRepo(t)
	seedMongo(t, repo)
	ctx := context.Background()

	parks, err := repo.ListParks(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Roosevelt Park", "Watson Park"}, parks)

	dates, err := repo.AvailableDates(ctx, "roosevelt park")
	require.NoError(t, err)
	assert.Equal(t, []string{"2025-06-01"}, dates)

	slots, err := repo.AvailableSlots(ctx, "Roosevelt Park", june1)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"10:00-11:00", "11:00-12:00"}, slots)
}

func TestMongoSchedule_MarkBookedFlipsOnce(t *testing.T) {
	repo := newMongoRepo(t)
	seedMongo(t, repo)
	ctx := context.Background()

	flipped, err := repo.MarkBooked(ctx, "Roosevelt Park", june1, " 10:00-11:00 ")
	require.NoError(t, err)
	assert.True(t, flipped)

	flipped, err = repo.MarkBooked(ctx, "Roosevelt Park", june1, "10:00-11:00")
	require.NoError(t, err)
	assert.False(t, flipped)

	slots, err := repo.AvailableSlots(ctx, "Roosevelt Park", june1)
	require.NoError(t, err)
	assert.Equal(t, []string{"11:00-12:00"}, slots)
}

func TestMongoSchedule_ConcurrentMarkBookedHasOneWinner(t *testing.T) {
	repo := newMongoRepo(t)
	seedMongo(t, repo)
	ctx := context.Background()

	const n = 8
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		wins int
	)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			flipped, err := repo.MarkBooked(ctx, "Watson Park", time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC), "09:00-10:00")
			assert.NoError(t, err)
			if flipped {
				mu.Lock()
				wins++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, wins)
}
