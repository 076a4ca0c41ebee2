package logger_test

import (
	"sync"
	"testing"

	"github.com/Manoj-Murari/task-analyzer/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTestLogger(t *testing.T) {
	t.Parallel()

	logBuf, log := logger.NewTestLogger(t)

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			log.Debug("scored", "task_id", n)
		}(i)
	}
	wg.Wait()

	entries, err := logBuf.GetLogEntries()
	require.NoError(t, err)
	assert.Len(t, entries, 4)

	logger.AssertLogContains(t, logBuf, `"msg":"scored"`)
	logger.AssertLogField(t, logBuf, "task_id", float64(3))
}
