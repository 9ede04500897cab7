package router

import (
	"time"

	"cajacentral/internal/config"
	"cajacentral/internal/handler"
	"cajacentral/internal/infra"
	"cajacentral/internal/middleware"
	"cajacentral/internal/model"
	"cajacentral/internal/repository"
	"cajacentral/internal/service"
	"cajacentral/internal/worker"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns the configured Gin engine plus the
// worker handlers main starts the pool with.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, smtpCB *infra.CircuitBreaker) (*gin.Engine, worker.Handlers) {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders: []string{"X-Request-ID"},
		MaxAge:        12 * time.Hour,
	}))
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(rdb, cfg.APIReqPorMin, "rl:api"))

	// ── Infrastructure ───────────────────────────────────────────────────────
	mailer := infra.NewMailer(cfg)
	dispatcher := worker.NewDispatcher(rdb)
	sesiones := service.NewRedisSessionStore(rdb)

	// ── Repositories ─────────────────────────────────────────────────────────
	usuarioRepo := repository.NewUsuarioRepository(db)
	empresaRepo := repository.NewEmpresaRepository(db)
	entidadRepo := repository.NewEntidadRepository(db)
	cuentaRepo := repository.NewCuentaRepository(db)
	saldoRepo := repository.NewSaldoRepository(db)
	categoriaRepo := repository.NewCategoriaRepository(db)
	movimientoRepo := repository.NewMovimientoRepository(db)
	corteRepo := repository.NewCorteRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(usuarioRepo, sesiones, cfg.JWTSecret, time.Duration(cfg.SesionHoras)*time.Hour)
	empresaSvc := service.NewEmpresaService(empresaRepo)
	entidadSvc := service.NewEntidadService(db, entidadRepo, saldoRepo)
	cuentaSvc := service.NewCuentaService(cuentaRepo)
	categoriaSvc := service.NewCategoriaService(categoriaRepo)
	movimientoSvc := service.NewMovimientoService(db, movimientoRepo, cuentaRepo, corteRepo, saldoRepo)
	corteSvc := service.NewCorteService(db, corteRepo, empresaRepo, entidadRepo, saldoRepo, movimientoSvc, dispatcher)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	healthH := handler.NewHealthHandler(db, rdb, smtpCB)
	empresasH := handler.NewEmpresaHandler(empresaSvc)
	entidadesH := handler.NewEntidadHandler(entidadSvc)
	empleadosH := handler.NewEntidadHandlerPorRol(entidadSvc, model.RelacionEmpleado)
	clientesH := handler.NewEntidadHandlerPorRol(entidadSvc, model.RelacionCliente)
	proveedoresH := handler.NewEntidadHandlerPorRol(entidadSvc, model.RelacionProveedor)
	cuentasH := handler.NewCuentaHandler(cuentaSvc)
	categoriasH := handler.NewCategoriaHandler(categoriaSvc)
	movimientosH := handler.NewMovimientoHandler(movimientoSvc)
	cortesH := handler.NewCorteHandler(corteSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", healthH.Check)
	r.POST("/api/auth/login", middleware.RateLimiter(rdb, cfg.LoginPorMin, "rl:login"), authH.Login)

	// Protected
	authMW := middleware.SessionAuth(cfg.JWTSecret, sesiones)
	api := r.Group("/api", authMW)
	{
		api.POST("/auth/logout", authH.Logout)
		api.GET("/auth/perfil", authH.Perfil)

		soloAdmin := middleware.RequireRole("admin")

		empresas := api.Group("/empresas")
		{
			empresas.GET("", empresasH.Listar)
			empresas.GET("/:id", empresasH.Obtener)
			empresas.POST("", empresasH.Crear)
			empresas.PUT("/:id", empresasH.Actualizar)
			empresas.DELETE("/:id", soloAdmin, empresasH.Eliminar)
		}

		// Full catalog plus the three role-scoped views of the same records.
		for prefix, h := range map[string]*handler.EntidadHandler{
			"/entidades":   entidadesH,
			"/empleados":   empleadosH,
			"/clientes":    clientesH,
			"/proveedores": proveedoresH,
		} {
			g := api.Group(prefix)
			g.GET("", h.Listar)
			g.GET("/:id", h.Obtener)
			g.GET("/:id/saldos", h.Saldos)
			g.POST("", h.Crear)
			g.PUT("/:id", h.Actualizar)
			g.DELETE("/:id", soloAdmin, h.Eliminar)
		}

		cuentas := api.Group("/cuentas")
		{
			cuentas.GET("", cuentasH.Listar)
			cuentas.GET("/:id", cuentasH.Obtener)
			cuentas.POST("", cuentasH.Crear)
			cuentas.PUT("/:id", cuentasH.Actualizar)
			cuentas.DELETE("/:id", soloAdmin, cuentasH.Eliminar)
		}

		categorias := api.Group("/categorias")
		{
			categorias.GET("", categoriasH.Listar)
			categorias.GET("/:id", categoriasH.Obtener)
			categorias.POST("", categoriasH.Crear)
			categorias.PUT("/:id", categoriasH.Actualizar)
			categorias.DELETE("/:id", soloAdmin, categoriasH.Eliminar)
		}
		subcategorias := api.Group("/subcategorias")
		{
			subcategorias.GET("", categoriasH.ListarSubcategorias)
			subcategorias.POST("", categoriasH.CrearSubcategoria)
			subcategorias.PUT("/:id", categoriasH.ActualizarSubcategoria)
			subcategorias.DELETE("/:id", soloAdmin, categoriasH.EliminarSubcategoria)
		}

		movimientos := api.Group("/movimientos")
		{
			movimientos.GET("", movimientosH.Listar)
			movimientos.GET("/:id", movimientosH.Obtener)
			movimientos.POST("", movimientosH.Crear)
			movimientos.PUT("/:id", movimientosH.Actualizar)
			movimientos.DELETE("/:id", movimientosH.Eliminar)
		}

		cortes := api.Group("/cortes")
		{
			cortes.GET("", cortesH.Listar)
			cortes.GET("/:id", cortesH.Obtener)
			cortes.POST("", cortesH.Crear)
			cortes.PUT("/:id", cortesH.Actualizar)
			cortes.DELETE("/:id", cortesH.Eliminar)
			cortes.POST("/:id/enviar-reporte", cortesH.EnviarReporte)
		}
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	handlers := worker.Handlers{
		Reporte: worker.NewReporteWorker(corteRepo, dispatcher, cfg.PDFStoragePath),
		Email:   worker.NewEmailWorker(mailer, smtpCB),
	}
	return r, handlers
}
