// hmong-server exposes the Hmong RPA toolkit over a small HTTP API. The
// server is a thin caller: all semantics live in the library packages.
package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	hmong "github.com/xyooj/hmong-go"
	"github.com/xyooj/hmong-go/grammar"
	"github.com/xyooj/hmong-go/lexicon"
	"github.com/xyooj/hmong-go/numeral"
	"github.com/xyooj/hmong-go/phonology"
	"github.com/xyooj/hmong-go/phrase"
)

// Config is the server configuration, read from an optional YAML file.
type Config struct {
	Addr     string `yaml:"addr"`
	DictPath string `yaml:"dict_path"` // extra TSV dictionary merged over the builtin one
}

func loadConfig(path string) (Config, error) {
	cfg := Config{Addr: ":8080"}
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	if cfg.Addr == "" {
		cfg.Addr = ":8080"
	}
	return cfg, nil
}

type server struct {
	proc *hmong.Processor
	log  *zap.Logger
}

func main() {
	cfgPath := flag.String("config", "", "path to YAML config file")
	flag.Parse()

	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	cfg, err := loadConfig(*cfgPath)
	if err != nil {
		logger.Fatal("config", zap.Error(err))
	}

	proc := hmong.New()
	if cfg.DictPath != "" {
		proc, err = hmong.NewFromFile(cfg.DictPath)
		if err != nil {
			logger.Fatal("dictionary", zap.Error(err))
		}
		logger.Info("loaded dictionary", zap.String("path", cfg.DictPath))
	}

	s := &server{proc: proc, log: logger}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	s.routes(router)

	logger.Info("listening", zap.String("addr", cfg.Addr))
	if err := router.Run(cfg.Addr); err != nil {
		logger.Fatal("server", zap.Error(err))
	}
}

func (s *server) routes(r *gin.Engine) {
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := r.Group("/v1")
	v1.GET("/normalize", s.handleNormalize)
	v1.GET("/syllable/:token", s.handleSyllable)
	v1.GET("/tone/:token", s.handleTone)
	v1.GET("/tone/:token/:target", s.handleConvertTone)
	v1.GET("/translate/:word", s.handleTranslate)
	v1.GET("/search", s.handleSearch)
	v1.GET("/pos/:word", s.handlePOS)
	v1.GET("/number/:value", s.handleNumber)
	v1.GET("/measure", s.handleMeasure)
	v1.GET("/greeting", s.handleGreeting)
	v1.GET("/proverb", s.handleProverb)
}

func (s *server) handleNormalize(c *gin.Context) {
	text := c.Query("text")
	c.JSON(http.StatusOK, gin.H{
		"text":   s.proc.Normalize(text),
		"tokens": s.proc.Tokenize(text),
	})
}

func (s *server) handleSyllable(c *gin.Context) {
	syl := s.proc.Decompose(c.Param("token"))
	c.JSON(http.StatusOK, gin.H{
		"raw":     syl.Raw,
		"onset":   syl.Onset,
		"nucleus": syl.Nucleus,
		"coda":    syl.Coda,
		"tone":    syl.Tone.String(),
		"valid":   syl.Valid,
	})
}

func (s *server) handleTone(c *gin.Context) {
	tone := s.proc.GetTone(c.Param("token"))
	c.JSON(http.StatusOK, gin.H{
		"tone":  tone.String(),
		"label": tone.Label(),
	})
}

func (s *server) handleConvertTone(c *gin.Context) {
	letter := c.Param("target")
	if letter == "none" {
		letter = ""
	}
	target, ok := phonology.ParseTone(letter)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown tone: " + c.Param("target")})
		return
	}
	out, err := s.proc.ConvertTone(c.Param("token"), target)
	if err != nil {
		s.log.Debug("convert tone failed", zap.String("token", c.Param("token")), zap.Error(err))
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"result": out})
}

func (s *server) handleTranslate(c *gin.Context) {
	word := c.Param("word")
	var (
		results []string
		err     error
	)
	if c.Query("dir") == "en" {
		results, err = s.proc.Reverse(word)
	} else {
		results, err = s.proc.Translate(word)
	}
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"word": word, "results": results})
}

func (s *server) handleSearch(c *gin.Context) {
	dir := lexicon.DirectionHmong
	if c.Query("dir") == "en" {
		dir = lexicon.DirectionEnglish
	}
	c.JSON(http.StatusOK, gin.H{"matches": s.proc.Search(c.Query("q"), dir)})
}

func (s *server) handlePOS(c *gin.Context) {
	word := c.Param("word")
	c.JSON(http.StatusOK, gin.H{
		"word": word,
		"pos":  string(grammar.Detect(word)),
	})
}

func (s *server) handleNumber(c *gin.Context) {
	value := c.Param("value")
	if n, err := strconv.Atoi(value); err == nil {
		words, err := numeral.ToHmong(n)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"number": n, "words": words})
		return
	}
	n, err := numeral.FromHmong(value)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"number": n, "words": value})
}

func (s *server) handleMeasure(c *gin.Context) {
	value, err := strconv.ParseFloat(c.Query("value"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad value"})
		return
	}
	from, ok := numeral.ParseUnit(c.Query("from"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown unit: " + c.Query("from")})
		return
	}
	to, ok := numeral.ParseUnit(c.Query("to"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown unit: " + c.Query("to")})
		return
	}
	out, err := numeral.ConvertMeasure(value, from, to)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"result": out})
}

func (s *server) handleGreeting(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"greeting": phrase.Greeting(c.Query("time"))})
}

func (s *server) handleProverb(c *gin.Context) {
	topic := c.DefaultQuery("topic", "wisdom")
	p, err := phrase.Proverb(topic)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"topic": topic, "proverb": p})
}
