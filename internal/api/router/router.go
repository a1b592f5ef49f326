package router

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger/v2"

	"cadastroprojetos/config"
	_ "cadastroprojetos/docs" // Registro do documento OpenAPI gerado
	"cadastroprojetos/internal/api/auth"
	"cadastroprojetos/internal/api/membro"
	"cadastroprojetos/internal/api/projeto"
	"cadastroprojetos/internal/domain"
	"cadastroprojetos/internal/pkg/cache"
	"cadastroprojetos/internal/pkg/logger"
	"cadastroprojetos/internal/pkg/middleware"
)

// NewRouter configura e retorna o roteador HTTP principal.
// Recebe os Handlers já inicializados por injeção de dependências.
func NewRouter(
	projetoHandler *projeto.Handler,
	authHandler *auth.Handler,
	membroHandler *membro.Handler,
	tokenSvc middleware.TokenService,
	cacheClient cache.Client,
	cfg *config.Config,
	log logger.Logger,
) http.Handler {

	// Usamos o ServeMux padrão do net/http com roteamento por método e path value.
	mux := http.NewServeMux()

	// Cadeias de middleware: autenticação JWT e, sobre ela, exigência de role.
	autenticado := middleware.NewAuthMiddleware(tokenSvc)
	somenteAdministrador := func(next http.HandlerFunc) http.HandlerFunc {
		return autenticado(middleware.PermissionMiddleware(domain.RoleAdministrador)(next))
	}
	limitado := middleware.RateLimiter(cacheClient, cfg.RateLimitMaxRequests, cfg.RateLimitPeriod)

	// --- 1. Health Check ---
	mux.HandleFunc("GET /ping", PingHandler)

	// --- 2. Autenticação (públicas, com rate limit) ---
	mux.Handle("POST /auth/login", limitado(http.HandlerFunc(authHandler.LoginHandler)))
	mux.Handle("POST /auth/register", limitado(http.HandlerFunc(authHandler.RegisterHandler)))

	// --- 3. Projetos ---
	mux.HandleFunc("POST /projeto/criar", somenteAdministrador(projetoHandler.CriarHandler))
	mux.HandleFunc("GET /projeto/mostrarProjetos", autenticado(projetoHandler.MostrarProjetosHandler))
	mux.HandleFunc("GET /projeto/gerarRelatorio", autenticado(projetoHandler.GerarRelatorioHandler))
	mux.HandleFunc("PATCH /projeto/associar/{id}", somenteAdministrador(projetoHandler.AssociarMembrosHandler))
	mux.HandleFunc("PATCH /projeto/avancarStatus/{id}", somenteAdministrador(projetoHandler.AvancarStatusHandler))
	mux.HandleFunc("PATCH /projeto/cancelar/{id}", somenteAdministrador(projetoHandler.CancelarProjetoHandler))
	mux.HandleFunc("DELETE /projeto/deletar/{id}", somenteAdministrador(projetoHandler.DeletarProjetoHandler))

	// --- 4. Diretório de Membros ---
	mux.HandleFunc("POST /membro/criar", membroHandler.CriarMembroHandler)
	mux.HandleFunc("GET /membro/retornarMembro/{id}", membroHandler.ConsultarMembroHandler)
	mux.HandleFunc("GET /membro/retornarMembros", membroHandler.ListarMembrosHandler)

	// --- 5. Documentação (Swagger UI) ---
	mux.Handle("/swagger/", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	// Middleware global de logging com request id.
	return middleware.RequestLogger(log)(mux)
}

// PingHandler é uma função utilitária para o health check.
func PingHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("pong"))
}
