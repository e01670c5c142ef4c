package command

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/atomicstack/termfolio/internal/calc"
	"github.com/atomicstack/termfolio/internal/content"
)

const pdfDelay = time.Second

var errNoWeather = errors.New("weather service is not configured")

func builtins() []Command {
	primary, utility := content.GroupMain, content.GroupUtility
	return []Command{
		{Name: "help", Summary: "Show this help message", Group: primary, Handler: runHelp},
		{Name: "about", Summary: "Display my professional summary", Group: primary, Handler: resumeBlock(content.About)},
		{Name: "skills", Summary: "View my technical expertise", Group: primary, Handler: resumeBlock(content.Skills)},
		{Name: "experience", Summary: "Show my work history", Group: primary, Handler: resumeBlock(content.Experience)},
		{Name: "education", Summary: "View my educational background", Group: primary, Handler: resumeBlock(content.Education)},
		{Name: "contact", Summary: "Get my contact information", Group: primary, Handler: resumeBlock(content.Contact)},
		{Name: "clear", Summary: "Clear the terminal screen", Group: primary, Handler: runClear},
		{Name: "projects", Summary: "View my project showcase", Group: utility, Handler: resumeBlock(content.Projects)},
		{Name: "skills-visual", Summary: "Show skills visualization", Group: utility, Handler: resumeBlock(content.SkillsVisual)},
		{Name: "game", Summary: "Play a mini-game", Group: utility, Handler: runGame},
		{Name: "exit-game", Summary: "Leave the mini-game", Group: utility, Hidden: true, Handler: runExitGame},
		{Name: "matrix", Summary: "Start Matrix digital rain effect", Group: utility, Handler: runMatrix},
		{Name: "stop-matrix", Summary: "Stop the Matrix effect", Group: utility, Hidden: true, Handler: runStopMatrix},
		{Name: "weather", Summary: "Check weather for a location", Usage: "weather [city name]", Group: utility, Handler: runWeather},
		{Name: "calc", Summary: "Calculate mathematical expressions", Usage: "calc [expression]", Group: utility, Handler: runCalc},
		{Name: "calculate", Summary: "Calculate mathematical expressions", Usage: "calculate [expression]", Group: utility, Hidden: true, Handler: runCalc},
		{Name: "pdf", Summary: "Download resume as PDF", Group: utility, Handler: runPDF},
		{Name: "linkedin-cover", Summary: "Generate LinkedIn cover image", Group: utility, Handler: runLinkedInCover},
		{Name: "theme", Summary: "List or switch colour themes", Usage: "theme [name]", Group: utility, Handler: runTheme},
		{Name: "dashboard", Summary: "Show the skills dashboard", Group: utility, Handler: resumeBlock(content.Dashboard)},
	}
}

func resumeBlock(build func(*content.Resume) content.Block) Handler {
	return func(ctx Context, _ Invocation) Result {
		return single(build(ctx.resume()))
	}
}

func single(b content.Block) Result {
	return Result{Blocks: []content.Block{b}}
}

func (c Context) resume() *content.Resume {
	if c.Resume != nil {
		return c.Resume
	}
	return content.MustDefault()
}

func runHelp(ctx Context, _ Invocation) Result {
	return single(content.Help(ctx.entries, ctx.Shortcuts))
}

func runLinkedInCover(ctx Context, _ Invocation) Result {
	return single(content.LinkedInCover(ctx.resume(), ctx.entries))
}

func runClear(ctx Context, _ Invocation) Result {
	res := single(content.Welcome(ctx.resume()))
	res.Effect = EffectClear
	return res
}

func runGame(Context, Invocation) Result {
	res := single(content.SnakeIntro())
	res.Effect = EffectSnakeStart
	return res
}

func runExitGame(Context, Invocation) Result {
	res := single(content.Info("Game exited."))
	res.Effect = EffectSnakeStop
	return res
}

func runMatrix(Context, Invocation) Result {
	res := single(content.Info("Matrix effect started. Type 'stop-matrix' to exit."))
	res.Effect = EffectMatrixStart
	return res
}

func runStopMatrix(Context, Invocation) Result {
	res := single(content.Info("Matrix effect stopped."))
	res.Effect = EffectMatrixStop
	return res
}

func runWeather(ctx Context, inv Invocation) Result {
	location := inv.Args
	if location == "" {
		return single(content.Error("Please specify a location. Usage: weather [city name]"))
	}
	res := single(content.Info(fmt.Sprintf("Fetching weather for %s...", location)))
	svc := ctx.Weather
	res.Pending = &Pending{Run: func(c context.Context) content.Block {
		if svc == nil {
			return weatherFailure(errNoWeather)
		}
		report, err := svc.Lookup(c, location)
		if err != nil {
			return weatherFailure(err)
		}
		return content.Weather(content.Forecast{
			Name:      report.Name,
			Country:   report.Country,
			Temp:      report.Temp,
			FeelsLike: report.FeelsLike,
			Humidity:  report.Humidity,
			Condition: report.Condition,
			WindKmh:   report.WindKmh,
		})
	}}
	return res
}

func weatherFailure(err error) content.Block {
	return content.Error("Failed to fetch weather data: " + err.Error())
}

func runCalc(ctx Context, inv Invocation) Result {
	expr := inv.Args
	if expr == "" {
		return single(content.Error("Please enter a mathematical expression. Usage: calc [expression]"))
	}
	calculator := ctx.Calculator
	if calculator == nil {
		calculator = calc.New()
	}
	v, err := calculator.Evaluate(expr)
	if err != nil {
		return single(content.Error("Error: Could not evaluate the expression. Make sure it's a valid mathematical expression."))
	}
	return single(content.Calculation(expr, calc.Format(v)))
}

func runPDF(Context, Invocation) Result {
	res := single(content.Info("Generating PDF resume..."))
	res.Pending = &Pending{Delay: pdfDelay, Run: func(context.Context) content.Block {
		return content.Error("PDF generation is not yet implemented.")
	}}
	return res
}

func runTheme(ctx Context, inv Invocation) Result {
	name := strings.ToLower(inv.Args)
	if name == "" {
		return single(content.Themes(ctx.Theme, ctx.Themes))
	}
	for _, known := range ctx.Themes {
		if known == name {
			res := single(content.Info(fmt.Sprintf("Theme set to %s.", name)))
			res.Theme = name
			return res
		}
	}
	return single(content.Error(fmt.Sprintf("Unknown theme: %s. Available themes: %s", inv.Args, strings.Join(ctx.Themes, ", "))))
}
