// Command medalgen designs a medal blank, validates it against a laser
// profile and writes SVG and PNG files.
package main

import (
	"encoding/json"
	"flag"
	"log"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gogpu/medal"
	"github.com/gogpu/medal/compose"
	"github.com/gogpu/medal/constraints"
	"github.com/gogpu/medal/export"
	"github.com/gogpu/medal/shape"
)

func main() {
	var (
		kind        = flag.String("type", "trail", "event type: trail, running, swimming, corporate, custom or all")
		name        = flag.String("name", "", "event name")
		year        = flag.String("year", compose.DefaultYear, "year engraved on the medal")
		distance    = flag.String("distance", compose.DefaultDistance, "distance label of trail medals")
		shapeName   = flag.String("shape", "", "outline of custom medals")
		diameter    = flag.Float64("diameter", 0, "medal size in mm (0 keeps the preset size)")
		wood        = flag.String("wood", "", "preview wood")
		profilePath = flag.String("profile", "", "YAML machine profile")
		compPath    = flag.String("composition", "", "YAML composition, replaces the preset")
		out         = flag.String("out", "medal.svg", "SVG output file")
		pngPath     = flag.String("png", "", "PNG preview output file")
		production  = flag.Bool("production", false, "write the laser production SVG instead of the preview")
		schema      = flag.Bool("schema", false, "print the composition JSON Schema and exit")
		verbose     = flag.Bool("v", false, "debug logging")
		force       = flag.Bool("force", false, "write files even when the design is invalid")
	)
	flag.Parse()

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	medal.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if *schema {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(compose.JSONSchema()); err != nil {
			log.Fatalf("Failed to encode schema: %v", err)
		}
		return
	}

	profile := constraints.Default()
	if *profilePath != "" {
		p, err := loadProfile(*profilePath)
		if err != nil {
			log.Fatalf("Failed to load profile: %v", err)
		}
		profile = p
	}

	presetOpts := compose.PresetOptions{
		EventName: *name,
		Year:      *year,
		Distance:  *distance,
		Diameter:  *diameter,
		Wood:      *wood,
	}
	if *shapeName != "" {
		v, err := shape.ParseVariant(*shapeName)
		if err != nil {
			log.Fatalf("Invalid shape: %v", err)
		}
		presetOpts.Shape = v
	}

	var exportOpts []export.Option
	if *wood != "" {
		exportOpts = append(exportOpts, export.WithWood(*wood))
	}
	if *production {
		exportOpts = append(exportOpts, export.Production())
	}

	if *kind == "all" && *compPath == "" {
		writeAll(presetOpts, profile, filepath.Dir(*out), *pngPath != "", *force, exportOpts)
		return
	}

	var c compose.Composition
	if *compPath != "" {
		f, err := os.Open(*compPath)
		if err != nil {
			log.Fatalf("Failed to open composition: %v", err)
		}
		c, err = compose.LoadComposition(f)
		f.Close()
		if err != nil {
			log.Fatalf("Failed to load composition: %v", err)
		}
	} else {
		var err error
		c, err = compose.Preset(compose.EventType(*kind), presetOpts)
		if err != nil {
			log.Fatalf("Invalid type: %v", err)
		}
	}

	d, err := compose.Compose(c, profile)
	if err != nil {
		log.Fatalf("Failed to compose: %v", err)
	}
	log.Printf("%s (%s, profile %s)\n%s", d.Name, d.ID, profile.Name, d.Result)
	if !d.Valid() && !*force {
		log.Printf("Design is invalid, no files written (use -force to override)")
		os.Exit(1)
	}

	if err := writeFile(*out, func(f *os.File) error {
		return export.WriteSVG(f, d, exportOpts...)
	}); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	log.Printf("SVG saved to %s\n", *out)

	if *pngPath != "" {
		if err := writeFile(*pngPath, func(f *os.File) error {
			return export.WritePNG(f, d, export.DefaultScale, exportOpts...)
		}); err != nil {
			log.Fatalf("Failed to save: %v", err)
		}
		log.Printf("PNG saved to %s\n", *pngPath)
	}
}

var allEvents = []compose.EventType{
	compose.EventTrail,
	compose.EventRunning,
	compose.EventSwimming,
	compose.EventCorporate,
	compose.EventCustom,
}

// writeAll composes every preset in parallel and writes <type>.svg (and
// <type>.png) into dir. Invalid designs are skipped unless force is set.
func writeAll(opts compose.PresetOptions, profile constraints.Profile, dir string, withPNG, force bool, exportOpts []export.Option) {
	cs := make([]compose.Composition, len(allEvents))
	for i, kind := range allEvents {
		c, err := compose.Preset(kind, opts)
		if err != nil {
			log.Fatalf("Invalid type: %v", err)
		}
		cs[i] = c
	}

	designs, errs := compose.ComposeAll(cs, profile, 0)
	failed := false
	for i, d := range designs {
		if errs[i] != nil {
			log.Printf("%s: %v", allEvents[i], errs[i])
			failed = true
			continue
		}
		log.Printf("%s: %s\n%s", allEvents[i], d.Name, d.Result)
		if !d.Valid() && !force {
			failed = true
			continue
		}
		base := filepath.Join(dir, string(allEvents[i]))
		if err := writeFile(base+".svg", func(f *os.File) error {
			return export.WriteSVG(f, d, exportOpts...)
		}); err != nil {
			log.Fatalf("Failed to save: %v", err)
		}
		if withPNG {
			if err := writeFile(base+".png", func(f *os.File) error {
				return export.WritePNG(f, d, export.DefaultScale, exportOpts...)
			}); err != nil {
				log.Fatalf("Failed to save: %v", err)
			}
		}
	}
	if failed {
		os.Exit(1)
	}
}

func loadProfile(path string) (constraints.Profile, error) {
	f, err := os.Open(path)
	if err != nil {
		return constraints.Profile{}, err
	}
	defer f.Close()
	return constraints.LoadProfile(f)
}

func writeFile(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
