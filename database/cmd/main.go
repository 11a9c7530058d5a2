package main

import (
	"flag"

	"saludvital.cl/configs"
	"saludvital.cl/configs/configsdatabase"
	"saludvital.cl/configs/configslog"
	"saludvital.cl/database"
)

func main() {
	configs.LoadEnv()
	configslog.InitLogger()
	defer configslog.SyncLogger()

	migrateFlag := flag.Bool("migrate", false, "ejecutar las migraciones de la base de datos")
	seedFlag := flag.Bool("seed", false, "cargar los datos base (admin y especialidades)")
	flag.Parse()

	configsdatabase.InitDB()
	defer configsdatabase.CloseDB()

	database.Initialize(configsdatabase.GetDB(), *migrateFlag, *seedFlag)
}
