package main

import (
	"log"
	"net/http"
	"os"
	"strconv"

	"github.com/Vovarama1992/go-utils/httputil"
	"github.com/Vovarama1992/go-utils/logger"

	"github.com/mkoh-dev/tutorbot/internal/audio"
	"github.com/mkoh-dev/tutorbot/internal/delivery"
	"github.com/mkoh-dev/tutorbot/internal/infra"
	"github.com/mkoh-dev/tutorbot/internal/notify"
	"github.com/mkoh-dev/tutorbot/internal/ports"
	"github.com/mkoh-dev/tutorbot/internal/romaji"
	"github.com/mkoh-dev/tutorbot/internal/session"
	"github.com/mkoh-dev/tutorbot/internal/speech"
	"github.com/mkoh-dev/tutorbot/internal/telegram"
	"github.com/mkoh-dev/tutorbot/internal/tutor"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {

	// =========================================================================
	// ENV / LOGGER INIT
	// =========================================================================

	_ = godotenv.Load()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	if os.Getenv("BOT_TOKEN") == "" {
		log.Fatal("BOT_TOKEN is not set")
	}

	baseLogger, _ := zap.NewProduction()
	defer baseLogger.Sync()
	zl := logger.NewZapLogger(baseLogger.Sugar())

	cfg := tutor.ConfigFromEnv()

	// =========================================================================
	// INFRASTRUCTURE
	// =========================================================================

	s3Client, err := infra.NewS3Client()
	if err != nil {
		log.Fatalf("failed to init s3: %v", err)
	}

	converter := audio.NewFFmpegConverter()

	// =========================================================================
	// CLIENTS (TTS / MT / STT)
	// =========================================================================

	ttsClient := speech.NewGoogleTTSClient(cfg.LanguageCode, voiceFromEnv())
	translateClient := speech.NewGoogleTranslateClient(cfg.LanguageCode)

	var sttClient ports.Transcriber
	if os.Getenv("STT_PROVIDER") == "whisper" {
		sttClient = speech.NewWhisperClient(cfg.LanguageCode, s3Client)
	} else {
		sttClient = speech.NewGoogleSTTClient(cfg.LanguageCode, s3Client)
	}

	speechService := speech.NewService(ttsClient, translateClient, sttClient)

	// =========================================================================
	// SESSIONS / GUARD / NOTIFICATION
	// =========================================================================

	sessions := session.NewStore()
	guard := tutor.GuardFromEnv()

	notifier := notify.NewInfra(adminChatIDFromEnv())

	normalizer, _ := romaji.ForLanguage(cfg.LanguageCode)

	// =========================================================================
	// TELEGRAM BOT
	// =========================================================================

	botApp := telegram.NewBotApp()
	if err := botApp.InitBot(); err != nil {
		log.Fatalf("failed to init telegram bot: %v", err)
	}

	notifier.SetBot(botApp.Bot())

	tutorService := tutor.NewService(
		guard,
		sessions,
		speechService,
		s3Client,
		converter,
		normalizer,
		telegram.NewTransport(botApp.Bot()),
		notifier,
		cfg,
	)
	botApp.Tutor = tutorService

	go botApp.Run()

	// =========================================================================
	// HTTP ROUTER (ops)
	// =========================================================================

	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	sessionHandler := delivery.NewSessionHandler(sessions, zl)
	delivery.RegisterRoutes(r, sessionHandler)

	r.With(httputil.RecoverMiddleware).Get("/ping", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(200)
		w.Write([]byte("pong"))
	})

	// =========================================================================
	// START SERVER
	// =========================================================================

	addr := ":" + port
	zl.Log(logger.LogEntry{
		Level:   "info",
		Message: "listening at " + addr,
		Service: "tutorbot",
	})

	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

func voiceFromEnv() string {
	if v := os.Getenv("TTS_VOICE"); v != "" {
		return v
	}
	return "ja-JP-Wavenet-A"
}

func adminChatIDFromEnv() int64 {
	raw := os.Getenv("ADMIN_CHAT_ID")
	if raw == "" {
		return 0
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		log.Printf("[main] bad ADMIN_CHAT_ID %q: %v", raw, err)
		return 0
	}
	return id
}
