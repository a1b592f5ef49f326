package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	// Pacotes de infraestrutura e utilitários
	"cadastroprojetos/config"
	"cadastroprojetos/internal/pkg/cache"
	"cadastroprojetos/internal/pkg/database"
	"cadastroprojetos/internal/pkg/logger"
	"cadastroprojetos/internal/pkg/token"

	// Camadas da aplicação para Injeção de Dependências
	"cadastroprojetos/internal/api/auth"
	"cadastroprojetos/internal/api/membro"
	"cadastroprojetos/internal/api/projeto"
	"cadastroprojetos/internal/api/router"
	"cadastroprojetos/internal/repository/membrorepo"
	"cadastroprojetos/internal/repository/projetorepo"
	"cadastroprojetos/internal/repository/userrepo"
	"cadastroprojetos/internal/service/authservice"
	"cadastroprojetos/internal/service/membroservice"
	"cadastroprojetos/internal/service/projetoservice"
)

// @title Cadastro de Projetos API
// @version 1.0
// @description Backend de cadastro e ciclo de vida de projetos, com validação de equipe, classificação de risco e relatório agregado.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 0. Carregar variáveis de ambiente (.env). Se o arquivo não existir,
	// seguimos apenas com as variáveis do ambiente do sistema (ex: Docker).
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ Aviso: Arquivo .env não encontrado ou erro de leitura. Carregando configs apenas do ambiente do sistema.")
	}

	cfg := config.LoadConfig()
	log := logger.NewLogger(cfg.LogLevel)
	log.Info("Configurações carregadas.", nil)

	// 1. Conexão com Recursos de Infraestrutura

	// A. Banco de Dados (PostgreSQL)
	db, err := database.NewPostgresDB(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Falha ao conectar ao banco de dados.", err)
	}
	defer db.Close()
	log.Info("Conexão PostgreSQL estabelecida.", nil)

	// B. Cache (Redis)
	cacheClient := cache.NewRedisClient(cfg.RedisAddr)
	log.Info("Conexão Redis estabelecida.", nil)

	// C. Serviço de Tokens (JWT)
	tokenSvc := token.NewService(cfg.JWTSecretKey, cfg.TokenExpiry)

	// 2. Injeção de Dependências (Repository -> Service -> Handler)

	// A. Diretório de Membros
	membroRepo := membrorepo.NewMembroRepository(db, cfg.DBTimeout, log)
	membroSvc := membroservice.NewService(membroRepo, log)
	membroHandler := membro.NewHandler(membroSvc, log)

	// B. Projetos (o serviço de projetos consulta o diretório de membros)
	projetoRepo := projetorepo.NewProjetoRepository(db, cacheClient, cfg.DBTimeout, cfg.CacheTTL, log)
	projetoSvc := projetoservice.NewService(projetoRepo, membroRepo, log)
	projetoHandler := projeto.NewHandler(projetoSvc, log)

	// C. Autenticação
	userRepo := userrepo.NewUserRepository(db, cfg.DBTimeout, log)
	authSvc := authservice.NewService(userRepo, tokenSvc, log)
	authHandler := auth.NewHandler(authSvc, log)

	log.Debug("Camadas de repositório, serviço e handler inicializadas.", nil)

	// 3. Configuração e Início do Roteador/Servidor
	r := router.NewRouter(projetoHandler, authHandler, membroHandler, tokenSvc, cacheClient, cfg, log)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// 4. Execução e Graceful Shutdown
	go func() {
		log.Info("Servidor de cadastro de projetos ouvindo na porta", map[string]interface{}{"port": cfg.Port})
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Servidor falhou.", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit
	log.Info("Sinal de encerramento recebido. Desligando servidor...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Desligamento do servidor forçado.", err)
	}

	log.Info("Servidor encerrado com sucesso.", nil)
}
