package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aiforge/tasks-ms-go/internal/dispatch"
	"github.com/aiforge/tasks-ms-go/internal/logger"
	"github.com/aiforge/tasks-ms-go/internal/model"
	"github.com/aiforge/tasks-ms-go/internal/port"
	"github.com/aiforge/tasks-ms-go/internal/validation"
)

// downloadURLExpiry bounds how long a published artifact link stays valid.
const downloadURLExpiry = 24 * time.Hour

// VideoProcessingHandler runs local media operations on filesystem paths.
// When storage is configured (strg non-nil) the produced file is uploaded to
// bucket and the result carries a presigned download URL; otherwise the result
// only names the local output path.
func VideoProcessingHandler(proc port.MediaProcessor, strg port.Storage, bucket string) dispatch.HandlerFunc {
	return func(ctx context.Context, rec model.TaskRecord) (json.RawMessage, error) {
		var p model.VideoProcessingTask
		if err := rec.DecodePayload(&p); err != nil {
			return nil, err
		}
		if err := validation.ValidateStruct(p); err != nil {
			return nil, invalidPayloadErr(model.TypeVideoProcessing, err)
		}

		op := p.Operation
		if op == "" {
			op = "optimise"
		}
		out := p.OutputPath
		if out == "" {
			out = strings.TrimSuffix(p.InputPath, filepath.Ext(p.InputPath)) + ".webp"
		}

		var err error
		switch op {
		case "optimise":
			err = proc.Optimise(p.InputPath, out)
		case "resize":
			err = proc.Resize(p.InputPath, out, p.Width, p.Height)
		default:
			// the oneof validation above keeps this unreachable
			err = fmt.Errorf("unsupported operation: %s", op)
		}
		if err != nil {
			return nil, err
		}

		result := map[string]any{
			"operation":   op,
			"output_path": out,
		}

		if strg != nil {
			url, err := publishArtifact(ctx, strg, bucket, out)
			if err != nil {
				return nil, fmt.Errorf("could not publish output %q: %w", out, err)
			}
			result["url"] = url
		}

		logger.Infof(ctx, "✅  Successfully processed %q (%s)", p.InputPath, op)
		return json.Marshal(result)
	}
}

func publishArtifact(ctx context.Context, strg port.Storage, bucket, path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer func() {
		_ = f.Close()
	}()

	info, err := f.Stat()
	if err != nil {
		return "", err
	}

	key := filepath.Base(path)
	opts := map[string]string{"Content-Type": "image/webp"}
	if err := strg.SaveFile(ctx, bucket, key, f, info.Size(), opts); err != nil {
		return "", err
	}

	return strg.GeneratePresignedDownloadURL(ctx, bucket, key, downloadURLExpiry)
}
