package api

import (
	"crypto/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/daireto/phishing-url-detector/internal/models"
)

// entropyPool is a pool of ulid.MonotonicEntropy
var entropyPool = sync.Pool{
	New: func() any {
		return ulid.Monotonic(rand.Reader, 0)
	},
}

// generateID generates a new ULID
func generateID() string {
	e := entropyPool.Get().(*ulid.MonotonicEntropy)
	defer entropyPool.Put(e)
	ts := ulid.Timestamp(time.Now())
	return ulid.MustNew(ts, e).String()
}

// getDefaultStages returns the default stages for a scan
func getDefaultStages(scanID string) []*models.Stage {
	stages := make([]*models.Stage, 0, len(models.StageTypes()))
	for _, stageType := range models.StageTypes() {
		stages = append(stages, &models.Stage{
			ScanID: scanID,
			Type:   stageType,
			Status: models.StageStatusPending,
		})
	}
	return stages
}
