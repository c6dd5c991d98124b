// Serve the equilibrium solver over HTTP.
package main

import (
	"flag"

	"github.com/gin-gonic/gin"
	"github.com/golang/glog"

	"github.com/timpalpant/nashsolver/internal/api"
	"github.com/timpalpant/nashsolver/internal/config"
	"github.com/timpalpant/nashsolver/matrixgame"
)

func main() {
	configFile := flag.String("config", "", "INI file with solver and server settings")
	addr := flag.String("addr", "", "Address to listen on (overrides config)")
	flag.Parse()

	cfg := config.Default()
	if *configFile != "" {
		var err error
		if cfg, err = config.Load(*configFile); err != nil {
			glog.Fatal(err)
		}
	}
	if *addr != "" {
		cfg.Server.Addr = *addr
	}

	solver, err := matrixgame.NewCachedSolver(cfg.Cache.Size, cfg.Params())
	if err != nil {
		glog.Fatal(err)
	}

	gin.SetMode(gin.ReleaseMode)
	r := api.NewRouter(solver)
	glog.Infof("Listening on %v (cache size %d, params %+v)", cfg.Server.Addr, cfg.Cache.Size, cfg.Params())
	if err := r.Run(cfg.Server.Addr); err != nil {
		glog.Fatal(err)
	}
}
