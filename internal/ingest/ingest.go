package ingest

import (
	"bufio"
	"context"
	"errors"
	"io"
	"os"
	"strings"

	"jlv/internal/model"
	"jlv/internal/parse"
	"jlv/internal/util/logx"
)

type SourceKind string

const (
	SourceStdin SourceKind = "stdin"
	SourceFile  SourceKind = "file"
)

type Options struct {
	Source      SourceKind
	Path        string
	Parser      parse.Parser
	ScanBufSize int // per-line max (bytes)
}

// Result is a fully materialized load: the ordered entry sequence plus the
// count of lines dropped because they were not valid records.
type Result struct {
	Entries []model.Entry
	Dropped int
}

// Provider produces the full ordered entry sequence for one load cycle.
// There are no partial reads: a provider returns everything or fails.
type Provider interface {
	GetLines(ctx context.Context) (Result, error)
}

func NewProvider(opt Options) (Provider, error) {
	if opt.ScanBufSize <= 0 {
		opt.ScanBufSize = 1024 * 1024
	}
	switch opt.Source {
	case SourceStdin:
		return &readerProvider{r: os.Stdin, name: "stdin", opt: opt}, nil
	case SourceFile:
		if opt.Path == "" {
			return nil, errors.New("file source requires a path")
		}
		return &fileProvider{opt: opt}, nil
	}
	return nil, errors.New("unknown source kind")
}

type fileProvider struct {
	opt Options
}

func (p *fileProvider) GetLines(ctx context.Context) (Result, error) {
	f, err := os.Open(p.opt.Path)
	if err != nil {
		return Result{}, err
	}
	defer f.Close()
	return scanAll(ctx, f, p.opt.Path, p.opt)
}

type readerProvider struct {
	r    io.Reader
	name string
	opt  Options
}

func (p *readerProvider) GetLines(ctx context.Context) (Result, error) {
	return scanAll(ctx, p.r, p.name, p.opt)
}

// scanAll reads every line, parses it, and silently drops unparsable lines.
// The drop is deliberate policy (see Result.Dropped); each one is still
// visible at debug level in the app log.
func scanAll(ctx context.Context, r io.Reader, src string, opt Options) (Result, error) {
	scanner := bufio.NewScanner(r)
	buf := make([]byte, 0, 1024*64)
	scanner.Buffer(buf, opt.ScanBufSize)

	var res Result
	for scanner.Scan() {
		select {
		case <-ctx.Done():
			return Result{}, ctx.Err()
		default:
		}
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		e, err := opt.Parser.Parse(line)
		if err != nil {
			res.Dropped++
			logx.Debugf("ingest: dropped unparsable line from %s: %v", src, err)
			continue
		}
		res.Entries = append(res.Entries, e)
	}
	if err := scanner.Err(); err != nil {
		return Result{}, err
	}
	logx.Infof("ingest: %s loaded %d entries (%d dropped)", src, len(res.Entries), res.Dropped)
	return res, nil
}
