package eval

import (
	"crimson/lexer"
	"crimson/parser"
	"io"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/sirupsen/logrus"
)

// Config controls a Session. The zero value of each field means its
// default.
type Config struct {
	Filename       string        // name used in diagnostics, default "<stdin>"
	MaxDepth       int           // maximum call depth, default DefaultMaxDepth, at most MaxDepthLimit
	ParseCacheSize int           // parsed inputs to remember, 0 disables the cache
	Output         io.Writer     // where print writes, default os.Stdout
	Logger         *logrus.Entry // default: the logrus standard logger
}

// Session is one interactive session: a root environment that every
// input is evaluated against. A Session must not be used from more than
// one goroutine at a time; separate Sessions share nothing.
type Session struct {
	Filename string
	ID       string
	ctx      *Context
	cache    *lru.Cache[string, *parser.Program]
	log      *logrus.Entry
}

func NewSession(cfg Config) *Session {
	if cfg.Filename == "" {
		cfg.Filename = "<stdin>"
	}
	if cfg.Logger == nil {
		cfg.Logger = logrus.NewEntry(logrus.StandardLogger())
	}
	ctx := NewContext()
	if cfg.MaxDepth > 0 {
		ctx.maxDepth = min(cfg.MaxDepth, MaxDepthLimit)
	}
	if cfg.Output != nil {
		ctx.out = cfg.Output
	}
	id := uuid.NewString()
	s := &Session{
		Filename: cfg.Filename,
		ID:       id,
		ctx:      ctx,
		log:      cfg.Logger.WithField("session", id),
	}
	if cfg.ParseCacheSize > 0 {
		// only fails for a non-positive size
		s.cache, _ = lru.New[string, *parser.Program](cfg.ParseCacheSize)
	}
	return s
}

// Run evaluates one input unit against the session environment. On
// failure the returned error is a *lexer.Error, a *parser.ParserError
// or an *Error; use KindOf to classify it. Bindings made before a
// runtime error remain in place.
func (s *Session) Run(input string) (Value, error) {
	return s.RunNamed(s.Filename, input)
}

// RunNamed is Run with a different filename for diagnostics, e.g. when
// evaluating a script file.
func (s *Session) RunNamed(filename string, input string) (Value, error) {
	program, err := s.parse(filename, input)
	if err != nil {
		s.log.WithField("kind", KindOf(err)).Debug("input rejected")
		return nil, err
	}
	rv := s.ctx.EvalProgram(program)
	if isError(rv) {
		e := rv.(*Error)
		s.log.WithField("kind", e.Kind).Debug("evaluation failed")
		return nil, e
	}
	return rv, nil
}

func (s *Session) parse(filename string, input string) (*parser.Program, error) {
	useCache := s.cache != nil && filename == s.Filename
	if useCache {
		if program, ok := s.cache.Get(input); ok {
			s.log.Debug("parse cache hit")
			return program, nil
		}
	}
	l := lexer.New(filename, input)
	l.ScanTokens()
	if len(l.Errors) != 0 {
		for _, err := range l.Errors[1:] {
			s.log.Debug(err.String())
		}
		return nil, &l.Errors[0]
	}
	p := parser.New(filename, l.Tokens)
	program := p.Parse()
	if len(p.Errors) != 0 {
		return nil, p.Errors[0]
	}
	s.log.WithField("statements", len(program.Stmts)).Debug("parsed input")
	if useCache {
		s.cache.Add(input, program)
	}
	return program, nil
}

// Inspect renders v the way the REPL prints it.
func (s *Session) Inspect(v Value) string {
	return v.String()
}
