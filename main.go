// droidstrings — converts a platform-agnostic string set to and from Android
// strings.xml resources.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/minios-linux/droidstrings/android"
	"github.com/minios-linux/droidstrings/config"
	"github.com/minios-linux/droidstrings/i18n"
	"github.com/minios-linux/droidstrings/lockfile"
	"github.com/minios-linux/droidstrings/stringset"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// Version information (set via -ldflags during build)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// ANSI colors
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[0;31m"
	colorGreen  = "\033[0;32m"
	colorYellow = "\033[1;33m"
	colorBlue   = "\033[0;34m"
)

func logInfo(format string, args ...any) {
	fmt.Fprintf(os.Stderr, colorBlue+"[INFO]"+colorReset+" "+format+"\n", args...)
}

func logSuccess(format string, args ...any) {
	fmt.Fprintf(os.Stderr, colorGreen+"[OK]"+colorReset+" "+format+"\n", args...)
}

func logWarning(format string, args ...any) {
	fmt.Fprintf(os.Stderr, colorYellow+"[WARN]"+colorReset+" "+format+"\n", args...)
}

func logError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, colorRed+"[ERROR]"+colorReset+" "+format+"\n", args...)
}

// ---------------------------------------------------------------------------
// Global flags
// ---------------------------------------------------------------------------

var (
	rootDir    string
	configPath string
)

// ---------------------------------------------------------------------------
// Root command
// ---------------------------------------------------------------------------

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "droidstrings",
		Short: "Convert a string set to and from Android strings.xml files",
		Long: `droidstrings — Android strings.xml codec for a platform-agnostic string set.

The string set (strings.yaml) holds every key, its comment and one value per
language, grouped into sections. droidstrings reads values*/strings.xml
resources into it and generates them back.

Commands:
  consume     Read strings.xml files into the string set
  generate    Write strings.xml files from the string set
  status      Show languages and translation progress`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			i18n.Init("")
			android.Generator = "droidstrings " + version
		},
	}

	root.PersistentFlags().StringVar(&rootDir, "root", ".", "Project root directory")
	root.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default <root>/"+config.FileName+")")

	root.AddCommand(
		newConsumeCmd(),
		newGenerateCmd(),
		newStatusCmd(),
		newVersionCmd(),
	)

	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logError("%v", err)
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	if configPath != "" {
		return config.LoadFile(configPath)
	}
	return config.Load(rootDir)
}

// loadSet loads the string set and fills in the default language from cfg
// when the set does not declare one.
func loadSet(cfg *config.Config) (*stringset.Set, string, error) {
	path := cfg.StringsPath(rootDir)
	set, err := stringset.Load(path)
	if err != nil {
		return nil, "", err
	}
	if set.DefaultLang == "" {
		set.DefaultLang = cfg.DefaultLang
		set.AddLanguage(cfg.DefaultLang)
	}
	return set, path, nil
}

// ---------------------------------------------------------------------------
// version
// ---------------------------------------------------------------------------

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Display version, commit hash, and build date.`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("droidstrings version %s\n", version)
			fmt.Printf("  commit:    %s\n", commit)
			fmt.Printf("  built:     %s\n", date)
		},
	}
}

// ---------------------------------------------------------------------------
// consume
// ---------------------------------------------------------------------------

type consumeArgs struct {
	lang            string
	consumeAll      bool
	consumeComments bool
}

func newConsumeCmd() *cobra.Command {
	var a consumeArgs

	cmd := &cobra.Command{
		Use:   "consume [res-dir|strings.xml]",
		Short: "Read strings.xml files into the string set",
		Long: `Read Android string resources into the string set.

Given a res/ directory, every values*/strings.xml is read and its language is
taken from the directory name (values → default language, values-fr → fr,
values-zh-rCN → zh-Hans). Directories whose name is not a language, such as
values-land, are skipped. A single file may be given with --lang.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			configBool(cmd.Flags(), "consume-all", &a.consumeAll, cfg.ConsumeAll)
			configBool(cmd.Flags(), "consume-comments", &a.consumeComments, cfg.ConsumeComments)
			target := cfg.ResPath(rootDir)
			if len(args) == 1 {
				target = args[0]
			}
			return runConsume(cfg, target, a)
		},
	}

	cmd.Flags().StringVar(&a.lang, "lang", "", "Language of the input (default: taken from the path)")
	cmd.Flags().BoolVar(&a.consumeAll, "consume-all", false, "Add keys missing from the string set")
	cmd.Flags().BoolVar(&a.consumeComments, "consume-comments", false, "Copy resource comments into the string set")

	return cmd
}

func runConsume(cfg *config.Config, target string, a consumeArgs) error {
	set, setPath, err := loadSet(cfg)
	if err != nil {
		return err
	}
	set.ConsumeAll = a.consumeAll
	set.ConsumeComments = a.consumeComments

	files, err := resourceFiles(target)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf(i18n.T("no %s files found in %s"), android.DefaultFileName, target)
	}

	consumed := 0
	for _, file := range files {
		lang := a.lang
		if lang == "" {
			var ok bool
			lang, ok = android.ResolveLanguage(file, set.DefaultLang)
			if !ok {
				logWarning(i18n.T("Skipping %s: cannot determine language from path"), file)
				continue
			}
		}

		res, err := android.ReadFile(file, lang, set)
		if err != nil {
			return err
		}
		logInfo(i18n.N("%s [%s]: %d string", "%s [%s]: %d strings", res.Entries), file, lang, res.Entries)
		consumed++
	}

	if skipped := dedupe(set.Skipped()); len(skipped) > 0 {
		logWarning(i18n.N("%d key not in the string set (use --consume-all to add it): %s",
			"%d keys not in the string set (use --consume-all to add them): %s", len(skipped)),
			len(skipped), strings.Join(skipped, ", "))
	}

	if err := set.Save(setPath); err != nil {
		return err
	}
	logSuccess(i18n.N("Consumed %d file into %s", "Consumed %d files into %s", consumed), consumed, setPath)
	return nil
}

// resourceFiles returns the strings.xml files under target. target is either
// a file or an Android res/ directory.
func resourceFiles(target string) ([]string, error) {
	info, err := os.Stat(target)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", target, err)
	}
	if !info.IsDir() {
		return []string{target}, nil
	}
	if !android.CanHandleDirectory(target) {
		return nil, fmt.Errorf(i18n.T("%s is not an Android res directory"), target)
	}

	entries, err := os.ReadDir(target)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", target, err)
	}
	var files []string
	for _, e := range entries {
		if !e.IsDir() || !strings.HasPrefix(e.Name(), android.BaseDirName) {
			continue
		}
		path := filepath.Join(target, e.Name(), android.DefaultFileName)
		if fileExists(path) {
			files = append(files, path)
		}
	}
	return files, nil
}

// ---------------------------------------------------------------------------
// generate
// ---------------------------------------------------------------------------

type generateArgs struct {
	createFolders bool
	fallback      bool
	force         bool
}

func newGenerateCmd() *cobra.Command {
	var a generateArgs

	cmd := &cobra.Command{
		Use:   "generate [res-dir]",
		Short: "Write strings.xml files from the string set",
		Long: `Write Android string resources from the string set.

By default only values* directories that already exist are written, each in
the language its name resolves to. With --create-folders a values-<lang>
directory is written for every language of the string set, the default
language included. Documents whose content did not change since the last run
(see droidstrings.lock) are left untouched unless --force is given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			configBool(cmd.Flags(), "create-folders", &a.createFolders, cfg.CreateFolders)
			configBool(cmd.Flags(), "fallback", &a.fallback, cfg.Fallback)
			resDir := cfg.ResPath(rootDir)
			if len(args) == 1 {
				resDir = args[0]
			}
			return runGenerate(cfg, resDir, a)
		},
	}

	cmd.Flags().BoolVar(&a.createFolders, "create-folders", false, "Create values-<lang> directories for every language")
	cmd.Flags().BoolVar(&a.fallback, "fallback", false, "Use the default language for missing translations")
	cmd.Flags().BoolVar(&a.force, "force", false, "Rewrite documents even when unchanged")

	return cmd
}

// outputDoc is one strings.xml to generate.
type outputDoc struct {
	lang string
	path string
}

func runGenerate(cfg *config.Config, resDir string, a generateArgs) error {
	set, setPath, err := loadSet(cfg)
	if err != nil {
		return err
	}
	if len(set.Sections) == 0 {
		return fmt.Errorf(i18n.T("string set %s is empty, run consume first"), setPath)
	}

	docs, err := outputDocs(resDir, set.DefaultLang, cfg.FilterLanguages(set.Languages), a.createFolders)
	if err != nil {
		return err
	}
	if len(docs) == 0 {
		logWarning(i18n.T("Nothing to generate in %s (try --create-folders)"), resDir)
		return nil
	}

	lf, err := lockfile.Load(filepath.Dir(setPath))
	if err != nil {
		return err
	}

	var written, unchanged int
	var keys []string
	for _, d := range docs {
		sections := set.SectionsFor(d.lang, a.fallback)
		if stringset.CountEntries(sections) == 0 {
			logWarning(i18n.T("Skipping %s: no strings for %s"), d.path, d.lang)
			continue
		}

		content := android.Format(d.lang, sections)
		key := lockfile.DocumentKey(rootDir, d.path)
		keys = append(keys, key)

		if !a.force && fileExists(d.path) && !lf.IsChanged(key, content) {
			unchanged++
			continue
		}
		if err := android.WriteDocument(d.path, content); err != nil {
			return err
		}
		lf.Update(key, content)
		written++
		logInfo(i18n.T("Wrote %s [%s]"), d.path, d.lang)
	}

	lf.Clean(keys)
	if err := lf.Save(); err != nil {
		return err
	}
	logSuccess(i18n.T("%d written, %d unchanged"), written, unchanged)
	return nil
}

// outputDocs lists the documents to generate. Without createFolders these are
// the existing values* directories whose language resolves and is selected;
// with it, one values-<lang> directory per language.
func outputDocs(resDir, defaultLang string, langs []string, createFolders bool) ([]outputDoc, error) {
	var docs []outputDoc
	if createFolders {
		for _, lang := range langs {
			docs = append(docs, outputDoc{
				lang: lang,
				path: filepath.Join(resDir, android.OutputPathForLanguage(lang), android.DefaultFileName),
			})
		}
		return docs, nil
	}

	if !android.CanHandleDirectory(resDir) {
		return nil, fmt.Errorf(i18n.T("%s is not an Android res directory"), resDir)
	}
	entries, err := os.ReadDir(resDir)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", resDir, err)
	}
	selected := make(map[string]bool, len(langs))
	for _, l := range langs {
		selected[l] = true
	}
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		lang, ok := android.ResolveLanguage(e.Name(), defaultLang)
		if !ok || !selected[lang] {
			continue
		}
		docs = append(docs, outputDoc{
			lang: lang,
			path: filepath.Join(resDir, e.Name(), android.DefaultFileName),
		})
	}
	return docs, nil
}

// ---------------------------------------------------------------------------
// status
// ---------------------------------------------------------------------------

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show languages and translation progress",
		Long: `Show the configuration, the languages of the string set and how many
strings each language has. Does not modify any files.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			return runStatus(cfg)
		},
	}
}

func runStatus(cfg *config.Config) error {
	set, setPath, err := loadSet(cfg)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "\n%s%s%s\n", colorBlue, i18n.T("Project"), colorReset)
	fmt.Fprintln(os.Stderr, strings.Repeat("─", 60))
	absRoot, _ := filepath.Abs(rootDir)
	fmt.Fprintf(os.Stderr, "  Root:       %s\n", absRoot)
	if p := cfg.Path(); p != "" {
		fmt.Fprintf(os.Stderr, "  Config:     %s\n", p)
	}
	fmt.Fprintf(os.Stderr, "  Strings:    %s\n", setPath)
	fmt.Fprintf(os.Stderr, "  Res dir:    %s\n", cfg.ResPath(rootDir))
	fmt.Fprintf(os.Stderr, "  Default:    %s\n", set.DefaultLang)

	if lf, err := lockfile.Load(filepath.Dir(setPath)); err == nil {
		fmt.Fprintf(os.Stderr, "  Lock:       %s\n", lf.Summary())
	}
	fmt.Fprintln(os.Stderr)

	langs := cfg.FilterLanguages(set.Languages)
	total, _ := set.Stats(set.DefaultLang)
	if total == 0 {
		logInfo(i18n.T("The string set is empty. Run 'droidstrings consume' to read existing resources."))
		return nil
	}

	sorted := append([]string(nil), langs...)
	sort.Strings(sorted)
	width := langColumnWidth(sorted)

	fmt.Fprintf(os.Stderr, "%s%s%s\n", colorBlue, i18n.T("Translation Statistics"), colorReset)
	fmt.Fprintln(os.Stderr, strings.Repeat("─", 60))
	for _, lang := range sorted {
		_, translated := set.Stats(lang)
		fmt.Fprintf(os.Stderr, "  %-*s  %s  %d/%d  %s\n",
			width, lang, progressBar(translated*100/total, 20), translated, total, langName(lang))
	}
	fmt.Fprintln(os.Stderr)
	return nil
}

// progressBar renders a colored bar of the given width followed by the
// percentage.
func progressBar(percent, width int) string {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	filled := percent * width / 100

	color := colorRed
	switch {
	case percent >= 90:
		color = colorGreen
	case percent >= 50:
		color = colorYellow
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return fmt.Sprintf("%s%s%s %3d%%", color, bar, colorReset, percent)
}

// langName returns the native display name of a language code, or "" when
// the code is not a valid BCP 47 tag.
func langName(code string) string {
	tag, err := language.Parse(code)
	if err != nil {
		return ""
	}
	return display.Self.Name(tag)
}

func langColumnWidth(langs []string) int {
	w := 4
	for _, l := range langs {
		if len(l) > w {
			w = len(l)
		}
	}
	return w
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// configBool sets *dst to the config value unless the flag was given on the
// command line.
func configBool(flags *pflag.FlagSet, name string, dst *bool, value bool) {
	if !flags.Changed(name) {
		*dst = value
	}
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// dedupe removes repeated strings, keeping the first occurrence.
func dedupe(in []string) []string {
	seen := make(map[string]bool, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}
