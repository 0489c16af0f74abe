//go:build property

package worker_test

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"slices"
	"strconv"
	"sync"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"go.trai.ch/esb/internal/adapters/worker"
	"go.trai.ch/esb/internal/core/domain"
	"go.trai.ch/esb/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

// answerPermuted reads n requests and answers them in the order given by keys.
func answerPermuted(requests io.Reader, responses io.Writer, keys []int) {
	reader := bufio.NewReader(requests)

	received := make([]wireRequest, 0, len(keys))
	for range keys {
		line, err := reader.ReadBytes('\n')
		if err != nil {
			return
		}
		var req wireRequest
		if json.Unmarshal(line, &req) != nil {
			return
		}
		received = append(received, req)
	}

	order := make([]int, len(received))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int { return keys[a] - keys[b] })

	for _, i := range order {
		req := received[i]
		data, _ := json.Marshal(domain.GenerationResponse{
			ID:        req.ID,
			Type:      domain.KindTranslation,
			Succeeded: true,
			File:      &domain.GeneratedFile{Name: req.Translation.Name},
		})
		_, _ = responses.Write(append(data, '\n'))
	}
}

func TestClientRoutingProperties(t *testing.T) {
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Debug(gomock.Any()).AnyTimes()

	properties := gopter.NewProperties(nil)

	properties.Property("every caller receives the response to its own request", prop.ForAll(
		func(keys []int) bool {
			reqReader, reqWriter := io.Pipe()
			respReader, respWriter := io.Pipe()
			defer func() {
				_ = respWriter.Close()
				_ = reqReader.Close()
			}()

			client := worker.NewClient(respReader, reqWriter, logger)
			go answerPermuted(reqReader, respWriter, keys)

			var wg sync.WaitGroup
			ok := make([]bool, len(keys))
			for i := range keys {
				wg.Go(func() {
					name := strconv.Itoa(i) + ".en.json"
					resp, err := client.Call(context.Background(), translation(name))
					ok[i] = err == nil && resp.File != nil && resp.File.Name == name
				})
			}
			wg.Wait()

			return !slices.Contains(ok, false) && client.Pending() == 0
		},
		gen.SliceOf(gen.IntRange(0, 1000)),
	))

	properties.TestingRun(t)
}
