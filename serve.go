package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-chi/cors"
	"github.com/spf13/cobra"

	"github.com/crtvaryan/portfolio/internal/config"
	"github.com/crtvaryan/portfolio/internal/relay"
	"github.com/crtvaryan/portfolio/internal/site"
	"github.com/crtvaryan/portfolio/internal/store"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the web server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		content, err := site.LoadContent(cfg.ContentFile)
		if err != nil {
			return err
		}

		db, err := store.Open(cfg.DBPath)
		if err != nil {
			return err
		}
		defer db.Close()

		if !cfg.SMTPConfigured() {
			log.Println("WARNING: SMTP_USER/SMTP_PASS not set; contact messages will be stored but not emailed")
		}
		mailer := relay.NewSMTPMailer(relay.SMTPConfig{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			User:     cfg.SMTPUser,
			Password: cfg.SMTPPass,
			To:       cfg.ToEmail,
		})

		handler, err := newServer(cfg, db, mailer, content)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		srv := &http.Server{
			Addr:              ":" + cfg.Port,
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
		}
		errCh := make(chan error, 1)
		go func() {
			log.Printf("Server is running on port %s", cfg.Port)
			errCh <- srv.ListenAndServe()
		}()

		select {
		case err := <-errCh:
			if !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		case <-ctx.Done():
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		log.Println("Shutting down")
		return srv.Shutdown(shutdownCtx)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

// newServer assembles the gin engine behind the CORS handler.
func newServer(cfg *config.Config, db *store.DB, mailer relay.Mailer, content site.Content) (http.Handler, error) {
	gin.SetMode(cfg.GinMode)

	tmpl, err := site.Templates()
	if err != nil {
		return nil, err
	}
	if err := checkOutline(tmpl, content); err != nil {
		log.Printf("WARNING: %v", err)
	}

	r := gin.Default()
	r.SetHTMLTemplate(tmpl)
	r.StaticFS("/static", http.FS(site.Static()))

	admin := newAdminPanel(db, cfg.AdminUsername, cfg.AdminPassword)
	r.Use(admin.visitorTrackingMiddleware())

	// Home page route
	r.GET("/", func(c *gin.Context) {
		c.HTML(http.StatusOK, "index.html", site.NewPage(content, time.Now().Year()))
	})

	relay.New(mailer, db).Register(r)
	admin.setupAdminRoutes(r)

	return cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	})(r), nil
}

// checkOutline renders the page once and verifies every nav link has a
// section to land on.
func checkOutline(tmpl *template.Template, content site.Content) error {
	out, err := site.RenderIndex(tmpl, site.NewPage(content, time.Now().Year()))
	if err != nil {
		return err
	}
	o, err := site.ParseOutline(bytes.NewReader(out))
	if err != nil {
		return err
	}
	return o.Check()
}
