// Package batch produces rendered identifiers in bulk and stores them.
package batch

import (
	"context"
	"fmt"
	"strings"

	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/idgen"
	"github.com/viant/idgen/internal/render"
	"github.com/viant/idgen/internal/tracing"
)

// Service renders batches of identifiers from one generator.
type Service struct {
	generator idgen.Generator
	fs        afs.Service
}

// New creates a batch service. A nil fs uses afs.New().
func New(generator idgen.Generator, fs afs.Service) *Service {
	if fs == nil {
		fs = afs.New()
	}
	return &Service{generator: generator, fs: fs}
}

// Generate returns count identifiers rendered in format.
func (s *Service) Generate(ctx context.Context, count int, format string) (ret []string, err error) {
	_, span := tracing.StartSpan(ctx, "idgen.generate")
	defer func() { tracing.EndSpan(span, err) }()
	span.WithCount(count).WithAttributes(map[string]string{"idgen.format": format})

	if count <= 0 {
		return nil, fmt.Errorf("count must be > 0, got %d", count)
	}
	if err = render.Validate(format); err != nil {
		return nil, err
	}
	ret = make([]string, count)
	for i := range ret {
		if ret[i], err = render.Format(s.generator.GenerateID(), format); err != nil {
			return nil, err
		}
	}
	return ret, nil
}

// Upload writes lines, newline terminated, to the destination URL.
func (s *Service) Upload(ctx context.Context, URL string, lines []string) (err error) {
	ctx, span := tracing.StartSpan(ctx, "idgen.upload")
	defer func() { tracing.EndSpan(span, err) }()
	span.WithCount(len(lines)).WithAttributes(map[string]string{"idgen.dest": URL})

	var buf strings.Builder
	for _, line := range lines {
		buf.WriteString(line)
		buf.WriteByte('\n')
	}
	if err = s.fs.Upload(ctx, URL, file.DefaultFileOsMode, strings.NewReader(buf.String())); err != nil {
		return fmt.Errorf("failed to upload ids to %v: %w", URL, err)
	}
	return nil
}
