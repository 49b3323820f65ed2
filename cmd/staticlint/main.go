// Package main собирает multichecker для статического анализа кода сервиса.
//
// # Запуск
//
//	go build -o staticlint ./cmd/staticlint
//	./staticlint ./...
//
// # Состав
//
// Стандартные анализаторы golang.org/x/tools/go/analysis/passes:
//
//   - printf: форматные строки fmt.Printf и подобных
//   - shadow: затенение переменных
//   - structtag: корректность тегов структур
//   - unusedresult: неиспользуемые результаты функций
//
// Анализаторы staticcheck.io:
//
//   - все SA*: распространённые ошибки использования API
//   - все S1*: упрощения кода (simple)
//   - ST1003: именование по соглашениям Go (stylecheck)
//
// Собственный анализатор noosexit запрещает прямой вызов os.Exit
// в функции main пакета main. Завершение с ошибкой делается через run():
//
//	func main() {
//	    if err := run(); err != nil {
//	        log.Fatal(err)
//	    }
//	}
package main

import (
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/multichecker"
	"golang.org/x/tools/go/analysis/passes/printf"
	"golang.org/x/tools/go/analysis/passes/shadow"
	"golang.org/x/tools/go/analysis/passes/structtag"
	"golang.org/x/tools/go/analysis/passes/unusedresult"
	"honnef.co/go/tools/simple"
	"honnef.co/go/tools/staticcheck"
	"honnef.co/go/tools/stylecheck"
)

// stylechecks содержит включённые проверки stylecheck
var stylechecks = map[string]bool{
	"ST1003": true,
}

func analyzers() []*analysis.Analyzer {
	checks := []*analysis.Analyzer{
		printf.Analyzer,
		shadow.Analyzer,
		structtag.Analyzer,
		unusedresult.Analyzer,
		NoOsExitAnalyzer,
	}

	for _, v := range staticcheck.Analyzers {
		checks = append(checks, v.Analyzer)
	}
	for _, v := range simple.Analyzers {
		checks = append(checks, v.Analyzer)
	}
	for _, v := range stylecheck.Analyzers {
		if stylechecks[v.Analyzer.Name] {
			checks = append(checks, v.Analyzer)
		}
	}

	return checks
}

func main() {
	multichecker.Main(analyzers()...)
}
