package main

import (
	"os"
	"os/signal"
	"syscall"

	"saludvital.cl/configs"
	"saludvital.cl/configs/configsdatabase"
	"saludvital.cl/configs/configslog"
	"saludvital.cl/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"
	"go.uber.org/zap"
)

func main() {
	configs.LoadEnv()
	configslog.InitLogger()
	defer configslog.SyncLogger()

	configsdatabase.InitDB()
	defer configsdatabase.CloseDB()

	engine := html.New("./views", ".html")
	// Optional foreign keys arrive as *uint in the templates.
	engine.AddFunc("deref", func(p *uint) uint {
		if p == nil {
			return 0
		}
		return *p
	})

	app := fiber.New(fiber.Config{
		Views:       engine,
		AppName:     "Clínica Salud Vital",
		ViewsLayout: "layouts/panel_layout",
	})

	routes.SetupRoutes(app)

	// Graceful shutdown on SIGINT/SIGTERM.
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		configslog.SLog.Info("Señal de apagado recibida, cerrando el servidor...")
		if err := app.Shutdown(); err != nil {
			configslog.Log.Error("Error durante el apagado", zap.Error(err))
		}
	}()

	addr := ":" + configs.Port()
	configslog.SLog.Infof("Servidor escuchando en %s", addr)
	if err := app.Listen(addr); err != nil {
		configslog.Log.Fatal("El servidor no pudo iniciarse", zap.Error(err))
	}

	configslog.SLog.Info("Servidor detenido.")
}
