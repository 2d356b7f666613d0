package main

import (
	appfx "Caixa/internal/fx"

	"go.uber.org/fx"
)

// @title           Caixa API
// @version         1.0
// @description     Livro-caixa de transações com saldo e total investido.
// @BasePath        /api
func main() {
	fx.New(
		appfx.AppModule,
	).Run()
}
