package main

import "github.com/Amir-Shahriari/AI-Personal-Trainer/internal/app"

func main() {
	err := app.NewYogaCoachApp().
		Introspect(&app.ReportLoggerIntrospector{}).
		Run()
	if err != nil {
		panic(err)
	}
}
