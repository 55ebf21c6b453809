package main

import (
	"context"
	"io"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"academy/internal/app"
	"academy/internal/attendance"
	"academy/internal/auth"
	"academy/internal/config"
	"academy/internal/httpmiddleware"
	"academy/internal/mailer"
	"academy/internal/metrics"
	"academy/internal/queue"
	"academy/internal/registration"
	"academy/internal/schedule"
	"academy/internal/store"
	"academy/internal/student"
)

// icalHorizon bounds the exported calendar feed.
const icalHorizon = 28 * 24 * time.Hour

func main() {
	cfg := config.Load()

	logger := app.NewLogger(cfg.Env)
	defer logger.Sync() //nolint:errcheck
	log := logger.Sugar()

	if cfg.Env == "production" || cfg.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := runHTTP(cfg, log); err != nil {
		log.Fatalw("http server failed", "err", err)
	}
}

func runHTTP(cfg config.App, log *zap.SugaredLogger) error {
	st := store.New(cfg.DataDir, log)
	if err := st.EnsureFiles(); err != nil {
		return err
	}

	redisClient := store.NewRedis(cfg.RedisAddr)
	defer redisClient.Close()

	var q queue.Queue
	if cfg.QueueBackend == "redis" {
		// A separate worker process drains the redis list.
		q = queue.NewRedisList(redisClient.Client, cfg.QueueKey)
	} else {
		// Single-process mode: consume our own queue so alerts still
		// go out without a worker.
		mem := queue.NewInMemory(64)
		q = mem
		notifyCtx, stopNotify := context.WithCancel(context.Background())
		defer stopNotify()
		go runNotifier(notifyCtx, cfg, st, mem, log)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(gin.LoggerWithConfig(gin.LoggerConfig{
		SkipPaths: []string{"/api/health", "/metrics"},
	}))
	r.Use(corsMiddleware())
	r.Use(securityHeaders())
	r.Use(httpmiddleware.NewTokenBucket(cfg.RateLimitPerMin, cfg.RateLimitPerMin).GinMiddleware())

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true, "redis": redisClient.Healthy(c.Request.Context())})
	})

	// Public: one intake form submission.
	r.POST("/api/register", func(c *gin.Context) {
		var reg registration.Registration
		if err := c.ShouldBindJSON(&reg); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
			return
		}
		reg.Normalize()
		if err := reg.Validate(); err != nil {
			metrics.RegistrationsRejected.Inc()
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
			return
		}

		reg.ID = uuid.NewString()
		reg.CreatedAt = time.Now().UTC()
		if err := st.AppendRegistration(reg); err != nil {
			log.Errorw("saving registration", "err", err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Server error."})
			return
		}
		metrics.RegistrationsTotal.Inc()

		// Fire-and-forget: email trouble never blocks the form.
		if err := q.Publish(c.Request.Context(), queue.Message{Type: queue.TypeRegistration, Body: reg.ID}); err != nil {
			log.Errorw("queueing registration alert", "id", reg.ID, "err", err)
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "id": reg.ID})
	})

	// Admin login: verify PIN and set the session cookie.
	r.POST("/api/admin/login", func(c *gin.Context) {
		var req struct {
			PIN string `json:"pin" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil || !auth.CheckPIN(req.PIN, cfg.AdminPIN) {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Invalid PIN."})
			return
		}
		token, _, err := auth.IssueSession(cfg.JWTIssuer, cfg.JWTSigningKey, cfg.AdminSessionTTL)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Server error."})
			return
		}
		setSessionCookie(c, token, int(cfg.AdminSessionTTL.Seconds()))
		c.JSON(http.StatusOK, gin.H{"success": true})
	})

	r.POST("/api/admin/logout", func(c *gin.Context) {
		setSessionCookie(c, "", -1)
		c.JSON(http.StatusOK, gin.H{"success": true})
	})

	adminAPI := r.Group("/api", auth.AdminOnly(cfg.JWTSigningKey, cfg.JWTIssuer))

	adminAPI.GET("/registrations", func(c *gin.Context) {
		regs := st.Registrations()
		regs = registration.Filter(regs, c.Query("q"), c.Query("course"), c.Query("level"))
		regs = registration.Sort(regs, c.Query("sort"))
		c.JSON(http.StatusOK, regs)
	})

	adminAPI.GET("/registrations/export", func(c *gin.Context) {
		out, err := registration.ToCSV(st.Registrations())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "export failed"})
			return
		}
		c.Header("Content-Disposition", `attachment; filename="registrations.csv"`)
		c.Data(http.StatusOK, "text/csv; charset=utf-8", out)
	})

	adminAPI.GET("/students", func(c *gin.Context) {
		c.JSON(http.StatusOK, st.Students())
	})

	// Public: slot catalog snapshot for the portal.
	r.GET("/api/class-slots", func(c *gin.Context) {
		c.JSON(http.StatusOK, st.Slots())
	})

	// Student portal login: match by name, hand back a fresh snapshot.
	r.POST("/api/student/login", func(c *gin.Context) {
		var req struct {
			FullName string `json:"fullName" binding:"required"`
			Phone    string `json:"phone"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Please enter your name."})
			return
		}
		stu, ok := student.FindByName(st.Students(), req.FullName)
		if !ok {
			metrics.StudentLogins.WithLabelValues("not_found").Inc()
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"error":   "We couldn't find your name in the system. Please book your free assessment first.",
			})
			return
		}
		metrics.StudentLogins.WithLabelValues("ok").Inc()
		c.JSON(http.StatusOK, gin.H{"success": true, "student": student.NewSnapshot(stu, req.Phone, time.Now())})
	})

	r.GET("/api/student/next-class", func(c *gin.Context) {
		stu, ok := lookupStudent(c, st)
		if !ok {
			return
		}
		occ := schedule.Resolve(time.Now(), stu.Courses, st.Slots())
		if occ == nil {
			metrics.Resolutions.WithLabelValues("none").Inc()
			c.JSON(http.StatusOK, gin.H{"scheduled": false})
			return
		}
		metrics.Resolutions.WithLabelValues("found").Inc()
		c.JSON(http.StatusOK, gin.H{"scheduled": true, "occurrence": occ})
	})

	r.GET("/api/student/streak", func(c *gin.Context) {
		stu, ok := lookupStudent(c, st)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, gin.H{"streak": attendance.Streak(st.AttendanceFor(stu.FullName))})
	})

	// Live countdown to the next class as a server-sent event stream.
	// One driver per request; it dies with the connection.
	r.GET("/api/student/countdown", func(c *gin.Context) {
		stu, ok := lookupStudent(c, st)
		if !ok {
			return
		}
		occ := schedule.Resolve(time.Now(), stu.Courses, st.Slots())
		if occ == nil {
			c.JSON(http.StatusOK, gin.H{"scheduled": false})
			return
		}

		c.Header("Content-Type", "text/event-stream")
		c.Header("Cache-Control", "no-cache")
		c.Header("Connection", "keep-alive")

		frames := make(chan schedule.Remaining, 8)
		cd := schedule.NewCountdown()
		cd.Start(occ.At, func(frame schedule.Remaining) {
			select {
			case frames <- frame:
			default: // slow client, skip the frame
			}
		})
		defer cd.Stop()

		c.SSEvent("label", occ.CourseName+" • "+occ.SlotName+" • "+occ.Pretty)
		c.Stream(func(w io.Writer) bool {
			select {
			case frame := <-frames:
				c.SSEvent("countdown", frame.String())
				return !frame.Done
			case <-c.Request.Context().Done():
				return false
			}
		})
	})

	r.GET("/api/student/schedule.ics", func(c *gin.Context) {
		stu, ok := lookupStudent(c, st)
		if !ok {
			return
		}
		occ := schedule.Upcoming(time.Now(), stu.Courses, st.Slots(), icalHorizon)
		c.Header("Content-Disposition", `attachment; filename="schedule.ics"`)
		c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(schedule.ICalendar(stu.FullName, occ)))
	})

	// Pages: the admin page swaps to the login view without a session.
	r.GET("/admin", func(c *gin.Context) {
		if auth.HasValidSession(c, cfg.JWTSigningKey, cfg.JWTIssuer) {
			c.File(filepath.Join(cfg.PublicDir, "admin.html"))
			return
		}
		c.File(filepath.Join(cfg.PublicDir, "admin-login.html"))
	})
	r.GET("/student", func(c *gin.Context) {
		c.File(filepath.Join(cfg.PublicDir, "student.html"))
	})
	r.NoRoute(gin.WrapH(http.FileServer(http.Dir(cfg.PublicDir))))

	srv := &http.Server{
		Addr:        ":" + cfg.HTTPPort,
		Handler:     r,
		ReadTimeout: 15 * time.Second,
		// No write timeout: the SSE countdown stream stays open.
		IdleTimeout: 60 * time.Second,
	}

	go func() {
		log.Infow("server listening", "port", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalw("server error", "err", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Warnw("forced shutdown", "err", err)
	}

	log.Info("server exited")
	return nil
}

// runNotifier mails registration alerts from inside the API process.
// Mirrors the worker's loop for deployments that skip redis.
func runNotifier(ctx context.Context, cfg config.App, st *store.Store, q queue.Queue, log *zap.SugaredLogger) {
	var mail mailer.Mailer
	if cfg.EmailConfigured() {
		mail = mailer.NewSendGrid(cfg.SendgridKey, cfg.AppName, cfg.NotifyEmail, cfg.AdminEmail)
	} else {
		mail = mailer.NewConsole(log)
		log.Warn("email not configured (SENDGRID_API_KEY / NOTIFY_EMAIL / ADMIN_EMAIL), logging alerts instead")
	}

	messages, err := q.Consume(ctx)
	if err != nil {
		log.Errorw("notifier consume init failed", "err", err)
		return
	}
	for msg := range messages {
		if msg.Type != queue.TypeRegistration {
			continue
		}
		reg, ok := st.RegistrationByID(msg.Body)
		if !ok {
			log.Warnw("registration not found", "id", msg.Body)
			continue
		}
		if err := mail.SendRegistrationAlert(ctx, reg); err != nil {
			metrics.EmailsSent.WithLabelValues("failed").Inc()
			log.Errorw("sending registration alert", "id", reg.ID, "err", err)
			continue
		}
		metrics.EmailsSent.WithLabelValues("sent").Inc()
	}
}

// lookupStudent resolves the ?name= query against the directory,
// writing the error response itself when the lookup fails.
func lookupStudent(c *gin.Context, st *store.Store) (student.Student, bool) {
	name := c.Query("name")
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "name query parameter required"})
		return student.Student{}, false
	}
	stu, ok := student.FindByName(st.Students(), name)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "We couldn't find your schedule yet. Please contact the admin."})
		return student.Student{}, false
	}
	return stu, true
}

func setSessionCookie(c *gin.Context, value string, maxAge int) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     auth.SessionCookie,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// CORS middleware for browser requests.
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin == "" {
			origin = "*"
		}

		c.Header("Access-Control-Allow-Origin", origin)
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization")
		c.Header("Access-Control-Allow-Credentials", "true")
		c.Header("Access-Control-Max-Age", "86400")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

// Security headers middleware.
func securityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-Frame-Options", "DENY")
		c.Header("Referrer-Policy", "strict-origin-when-cross-origin")
		if gin.Mode() == gin.ReleaseMode {
			c.Header("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
		}
		c.Next()
	}
}
