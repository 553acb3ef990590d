package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"scopestyle/internal/catalog"
	"scopestyle/internal/config"
	"scopestyle/internal/debug"
	appErrors "scopestyle/internal/errors"
	"scopestyle/internal/render"
	"scopestyle/internal/theme"
	"scopestyle/internal/theme/builtin"
)

const defaultWidth = 80

// defaultScopes are previewed when no -scope flag is given.
var defaultScopes = []string{
	"source",
	"source comment",
	"source keyword.control",
	"source storage.type",
	"source string.quoted",
	"source constant.numeric",
	"source entity.name.function",
	"source entity.name.type",
	"source variable.parameter",
	"text markup.heading",
	"source invalid.illegal",
}

// scopeList collects repeated -scope flags.
type scopeList []string

func (s *scopeList) String() string { return strings.Join(*s, ", ") }

func (s *scopeList) Set(v string) error {
	*s = append(*s, v)
	return nil
}

type sourceKind int

const (
	fromBuiltin sourceKind = iota
	fromFile
	fromUUID
)

type themeSource struct {
	kind  sourceKind
	value string
}

// flagKeys maps flags that mirror config keys.
var flagKeys = map[string]string{
	"theme":     config.KeyThemePath,
	"builtin":   config.KeyThemeBuiltin,
	"uuid":      config.KeyThemeUUID,
	"font":      config.KeyFontName,
	"font-size": config.KeyFontSize,
	"profile":   config.KeyRenderProfile,
	"debug":     config.KeyDebug,
}

func run(args []string, stdout, stderr io.Writer) int {
	if err := config.Initialize(); err != nil {
		fmt.Fprintf(stderr, "Error initializing config: %v\n", err)
		return 1
	}

	fs := flag.NewFlagSet("scopestyle", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var scopes scopeList
	versionFlag := fs.Bool("version", false, "Print version information and exit")
	fs.String("theme", config.GetString(config.KeyThemePath), "Path to a theme file (.json, .yaml, .yml, .tmTheme, .plist)")
	fs.String("builtin", config.GetString(config.KeyThemeBuiltin), "Bundled theme name (see -list)")
	fs.String("uuid", config.GetString(config.KeyThemeUUID), "Uuid of a bundled or catalogued theme")
	fs.String("font", config.GetString(config.KeyFontName), "Font name carried by resolved styles")
	fs.Float64("font-size", config.GetFloat64(config.KeyFontSize), "Font size carried by resolved styles")
	fs.String("profile", config.GetString(config.KeyRenderProfile), "Colour profile (auto, truecolor, 256, 16, none)")
	fs.Bool("debug", config.GetBool(config.KeyDebug), "Write a debug log to ~/.scopestyle/debug.log")
	fs.Var(&scopes, "scope", "Scope path to resolve, e.g. \"source.go comment.line\" (repeatable)")
	gutterFlag := fs.Bool("gutter", false, "Show the gutter palette")
	importFlag := fs.String("import", "", "Store a theme file in the catalog")
	listFlag := fs.Bool("list", false, "List bundled and catalogued themes")
	saveFlag := fs.Bool("save", false, "Remember the selected theme in the config file")
	widthFlag := fs.Int("width", defaultWidth, "Output width used to size the scope column")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(stderr, "Error: unexpected arguments: %s\n", strings.Join(fs.Args(), " "))
		return 2
	}
	if *versionFlag {
		printVersion(stdout)
		return 0
	}

	visited := map[string]struct{}{}
	fs.Visit(func(f *flag.Flag) {
		visited[f.Name] = struct{}{}
	})
	overrides := map[string]any{}
	for name := range visited {
		key, ok := flagKeys[name]
		if !ok {
			continue
		}
		overrides[key] = fs.Lookup(name).Value.String()
	}
	if err := config.ApplyOverrides(overrides); err != nil {
		fmt.Fprintf(stderr, "Error applying flags: %v\n", err)
		return 1
	}

	if config.GetBool(config.KeyDebug) {
		if err := debug.Init(true); err != nil {
			fmt.Fprintf(stderr, "Warning: debug logging disabled: %v\n", err)
		}
		defer debug.Close()
	}

	a := &app{
		ctx:    context.Background(),
		stdout: stdout,
		reg: theme.NewRegistry(
			config.GetInt(config.KeyRegistryCapacity),
			theme.WithFont(config.GetString(config.KeyFontName), config.GetFloat64(config.KeyFontSize)),
		),
	}
	defer a.close()

	if err := a.execute(options{
		source:     selectSource(visited),
		scopes:     scopes,
		gutter:     *gutterFlag,
		importPath: strings.TrimSpace(*importFlag),
		list:       *listFlag,
		save:       *saveFlag,
		width:      *widthFlag,
		profile:    config.GetString(config.KeyRenderProfile),
		preview:    wantsPreview(visited, scopes),
	}); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		if appErrors.IsCode(err, appErrors.CodeConfigurationError) {
			return 2
		}
		return 1
	}
	return 0
}

type options struct {
	source     themeSource
	scopes     []string
	gutter     bool
	importPath string
	list       bool
	save       bool
	width      int
	profile    string
	preview    bool
}

// selectSource picks where the theme comes from. Explicit flags win over
// configuration; within each, a file beats a uuid beats a bundled name.
func selectSource(visited map[string]struct{}) themeSource {
	candidates := []struct {
		flag string
		key  string
		kind sourceKind
	}{
		{"theme", config.KeyThemePath, fromFile},
		{"uuid", config.KeyThemeUUID, fromUUID},
		{"builtin", config.KeyThemeBuiltin, fromBuiltin},
	}
	for _, c := range candidates {
		if _, ok := visited[c.flag]; ok {
			return themeSource{kind: c.kind, value: strings.TrimSpace(config.GetString(c.key))}
		}
	}
	for _, c := range candidates {
		if v := strings.TrimSpace(config.GetString(c.key)); v != "" {
			return themeSource{kind: c.kind, value: v}
		}
	}
	return themeSource{kind: fromBuiltin, value: config.DefaultBuiltin}
}

// wantsPreview reports whether a theme should be rendered. -import and -list
// on their own only touch the catalog.
func wantsPreview(visited map[string]struct{}, scopes []string) bool {
	_, importing := visited["import"]
	_, listing := visited["list"]
	if !importing && !listing {
		return true
	}
	if len(scopes) > 0 {
		return true
	}
	for _, name := range []string{"theme", "uuid", "builtin", "gutter", "save"} {
		if _, ok := visited[name]; ok {
			return true
		}
	}
	return false
}

type app struct {
	ctx     context.Context
	stdout  io.Writer
	reg     *theme.Registry
	catalog *catalog.Catalog
}

func (a *app) close() {
	if a.catalog != nil {
		_ = a.catalog.Close()
	}
}

// openCatalog opens the catalog on first use.
func (a *app) openCatalog() (*catalog.Catalog, error) {
	if a.catalog != nil {
		return a.catalog, nil
	}
	path, err := config.CatalogPath()
	if err != nil {
		return nil, appErrors.New(appErrors.CodeConfigurationError, "resolve catalog path", err)
	}
	c, err := catalog.Open(a.ctx, path)
	if err != nil {
		return nil, err
	}
	a.catalog = c
	return c, nil
}

func (a *app) execute(opts options) error {
	if opts.importPath != "" {
		if err := a.importTheme(opts.importPath); err != nil {
			return err
		}
	}
	if opts.list {
		if err := a.listThemes(); err != nil {
			return err
		}
	}
	if !opts.preview {
		return nil
	}

	th, doc, err := a.loadTheme(opts.source)
	if err != nil {
		return err
	}

	r, err := render.New(a.stdout, opts.profile)
	if err != nil {
		return err
	}

	tone := "light"
	if th.IsDark() {
		tone = "dark"
	}
	fmt.Fprintf(a.stdout, "%s (%s) %s, %s\n", th.Name(), th.UUID(), tone, th.ColorSpace())

	scopes := opts.scopes
	if len(scopes) == 0 && !opts.gutter {
		scopes = defaultScopes
	}
	if len(scopes) > 0 {
		fmt.Fprint(a.stdout, r.Preview(th, scopes, opts.width))
	}
	if opts.gutter {
		fmt.Fprint(a.stdout, r.GutterPreview(th))
	}

	if opts.save {
		return a.saveTheme(opts.source, th, doc)
	}
	return nil
}

func (a *app) loadTheme(src themeSource) (*theme.Theme, theme.Document, error) {
	var (
		doc theme.Document
		err error
	)
	switch src.kind {
	case fromFile:
		doc, err = readDocument(src.value)
		if err != nil {
			return nil, doc, err
		}
	case fromUUID:
		var ok bool
		doc, ok = builtin.LookupUUID(src.value)
		if !ok {
			c, err := a.openCatalog()
			if err != nil {
				return nil, doc, err
			}
			th, err := c.Load(a.ctx, a.reg, src.value)
			return th, doc, err
		}
	default:
		var ok bool
		doc, ok = builtin.Lookup(src.value)
		if !ok {
			return nil, doc, appErrors.New(appErrors.CodeNotFound,
				fmt.Sprintf("unknown builtin theme %q (available: %s)", src.value, strings.Join(builtin.Available(), ", ")), nil)
		}
	}
	th, err := a.reg.GetOrCreate(doc)
	return th, doc, err
}

func (a *app) importTheme(path string) error {
	doc, err := readDocument(path)
	if err != nil {
		return err
	}
	c, err := a.openCatalog()
	if err != nil {
		return err
	}
	source := path
	if abs, err := filepath.Abs(path); err == nil {
		source = abs
	}
	if err := c.Put(a.ctx, doc, source); err != nil {
		return err
	}
	fmt.Fprintf(a.stdout, "imported %s %q\n", strings.TrimSpace(doc.UUID), doc.Name)
	return nil
}

func (a *app) listThemes() error {
	fmt.Fprintln(a.stdout, "Bundled themes:")
	names := builtin.Available()
	nameWidth := 0
	for _, name := range names {
		nameWidth = max(nameWidth, len(name))
	}
	for _, name := range names {
		doc, _ := builtin.Lookup(name)
		fmt.Fprintf(a.stdout, "  %-*s  %s  %s\n", nameWidth, name, doc.UUID, doc.Name)
	}

	c, err := a.openCatalog()
	if err != nil {
		return err
	}
	entries, err := c.List(a.ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.stdout, "Catalog (%s):\n", c.Path())
	if len(entries) == 0 {
		fmt.Fprintln(a.stdout, "  (empty)")
	}
	for _, e := range entries {
		fmt.Fprintf(a.stdout, "  %s  %s  (%s)\n", e.UUID, e.Name, e.Source)
	}
	return nil
}

// saveTheme remembers the theme's uuid. File themes are catalogued first so
// the uuid resolves without the file.
func (a *app) saveTheme(src themeSource, th *theme.Theme, doc theme.Document) error {
	if src.kind == fromFile {
		c, err := a.openCatalog()
		if err != nil {
			return err
		}
		if err := c.Put(a.ctx, doc, src.value); err != nil {
			return err
		}
	}
	if err := config.SaveTheme(th.UUID()); err != nil {
		return appErrors.New(appErrors.CodeConfigurationError, "save theme", err)
	}
	fmt.Fprintf(a.stdout, "saved theme %s\n", th.UUID())
	return nil
}

func readDocument(path string) (theme.Document, error) {
	format, err := theme.FormatFromPath(path)
	if err != nil {
		return theme.Document{}, err
	}
	//nolint:gosec // G304: Theme path comes from the user
	data, err := os.ReadFile(path)
	if err != nil {
		return theme.Document{}, appErrors.New(appErrors.CodeNotFound, fmt.Sprintf("read theme %s", path), err)
	}
	return theme.Decode(data, format)
}
