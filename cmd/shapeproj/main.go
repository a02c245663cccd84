// Command shapeproj inspects shapefiles and the projection described by
// their .prj sidecar files.
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/beetlebugorg/shapeproj/pkg/shapeproj"
)

var (
	flagCatalog string
	flagVerbose bool

	flagBBox    string
	flagRecords string
	flagAttrs   string
	flagGeo     bool
	flagLimit   int
)

var log = logrus.New()

var rootCmd = &cobra.Command{
	Use:   "shapeproj",
	Short: "Resolve and inspect shapefile projections",
	Long: `shapeproj resolves the map projection of ESRI shapefiles from their
.prj sidecar files and reads their geometry and attribute records.`,
	SilenceUsage: true,
	PersistentPreRun: func(*cobra.Command, []string) {
		log.SetLevel(logrus.WarnLevel)
		if flagVerbose {
			log.SetLevel(logrus.DebugLevel)
		}
	},
}

var infoCmd = &cobra.Command{
	Use:   "info [file.shp|file.prj]",
	Short: "Print the resolved projection of a shapefile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		reader, err := newReader()
		if err != nil {
			return err
		}
		proj, records, err := reader.Read(args[0])
		printProjection(proj)
		if err != nil {
			log.WithError(err).Warn("could not read records")
			return nil
		}
		fmt.Printf("Records:        %d\n", len(records))
		return nil
	},
}

var readCmd = &cobra.Command{
	Use:   "read [file.shp]",
	Short: "Read shapefile records with optional selection",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := shapeproj.DefaultReadOptions()
		opts.UseGeoCoords = flagGeo
		if flagRecords != "" {
			nums, err := parseInts(flagRecords)
			if err != nil {
				return fmt.Errorf("--records: %w", err)
			}
			opts.RecordNumbers = nums
		}
		if flagBBox != "" {
			box, err := parseBBox(flagBBox)
			if err != nil {
				return fmt.Errorf("--bbox: %w", err)
			}
			opts.BoundingBox = box
		}
		if flagAttrs != "" {
			opts.Attributes = strings.Split(flagAttrs, ",")
		}

		reader, err := newReader()
		if err != nil {
			return err
		}
		proj, records, err := reader.ReadWithOptions(args[0], opts)
		if err != nil {
			return err
		}

		printProjection(proj)
		fmt.Printf("Records:        %d\n\n", len(records))
		for i, rec := range records {
			if flagLimit > 0 && i >= flagLimit {
				fmt.Printf("... %d more\n", len(records)-i)
				break
			}
			fmt.Printf("#%d %s (%d coords)", rec.Number, rec.Geometry.Type, len(rec.Geometry.Coordinates))
			for k, v := range rec.Attributes {
				fmt.Printf(" %s=%v", k, v)
			}
			fmt.Println()
		}
		return nil
	},
}

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List the names in the projection catalog",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		names, err := shapeproj.CatalogNames(flagCatalog)
		if err != nil {
			return err
		}
		for _, name := range names {
			fmt.Println(name)
		}
		return nil
	},
}

func newReader() (shapeproj.Reader, error) {
	return shapeproj.NewReaderConfig(shapeproj.Config{
		CatalogPath: flagCatalog,
		Log:         log,
	})
}

func printProjection(p *shapeproj.Projection) {
	if !p.Resolved() {
		fmt.Printf("Projection:     unresolved (%s)\n", p.Reason())
		return
	}
	fmt.Printf("Projection:     %s (%s)\n", p.Kind(), p.MatchedName())
	lat, lon, _ := p.Origin()
	fmt.Printf("Origin:         %.6f, %.6f\n", lat, lon)
	fmt.Printf("False offsets:  %.1f E, %.1f N\n", p.FalseEasting(), p.FalseNorthing())
	fmt.Printf("Scale factor:   %g\n", p.ScaleFactor())
	fmt.Printf("Ellipsoid:      a=%.3f m, f=%.9f\n", p.SemimajorAxis(), p.Flattening())
	if zone, ok := p.Zone(); ok {
		latLim, lonLim, _ := p.MapLimits()
		fmt.Printf("UTM zone:       %s (lat %g..%g, lon %g..%g)\n",
			zone, latLim[0], latLim[1], lonLim[0], lonLim[1])
	}
}

func parseInts(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	nums := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, err
		}
		nums = append(nums, n)
	}
	return nums, nil
}

func parseBBox(s string) (*shapeproj.Bounds, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return nil, fmt.Errorf("expected minx,miny,maxx,maxy")
	}
	vals := make([]float64, 4)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, err
		}
		vals[i] = v
	}
	return &shapeproj.Bounds{MinX: vals[0], MinY: vals[1], MaxX: vals[2], MaxY: vals[3]}, nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagCatalog, "catalog", "", "path to an external projection catalog (default: embedded)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug diagnostics")

	readCmd.Flags().StringVar(&flagBBox, "bbox", "", "bounding box filter: minx,miny,maxx,maxy")
	readCmd.Flags().StringVar(&flagRecords, "records", "", "comma-separated 1-based record numbers")
	readCmd.Flags().StringVar(&flagAttrs, "attrs", "", "comma-separated attribute names to keep")
	readCmd.Flags().BoolVar(&flagGeo, "geo", false, "treat coordinates as geographic lon/lat")
	readCmd.Flags().IntVar(&flagLimit, "limit", 20, "maximum records to print (0 for all)")

	rootCmd.AddCommand(infoCmd, readCmd, catalogCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
