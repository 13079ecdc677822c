package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/logrusorgru/aurora"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/pkg/errors"
	kingpin "gopkg.in/alecthomas/kingpin.v2"

	"github.com/point-libs/geom2d"
	"github.com/point-libs/geom2d/dbg"
)

// Demo of point-cloud reflection. Input on stdin should be newline
// separated points in the form "x y", with each group separated by an
// extra newline. The first group must contain exactly two points and
// defines the mirror line; every following group is a point cloud to
// reflect about it.

var (
	scale   = kingpin.Flag("scale", "Drawing scale in pixels per unit.").Default("1").Float64()
	out     = kingpin.Flag("out", "Write a PNG of the clouds and mirror line to this path.").String()
	cat     = kingpin.Flag("cat", "Display the PNG inline in the terminal.").Bool()
	verbose = kingpin.Flag("verbose", "Label each cloud with a readable name.").Bool()
)

func main() {
	kingpin.Parse()

	groups, err := readGroups(os.Stdin)
	if err != nil {
		kingpin.Fatalf("reading input: %v", err)
	}
	if len(groups) < 2 {
		kingpin.Fatalf("need a mirror line group and at least one cloud, got %d group(s)", len(groups))
	}
	line := groups[0]
	if len(line) != 2 {
		kingpin.Fatalf("mirror line group must have exactly two points, got %d", len(line))
	}
	p0, p1 := line[0], line[1]

	var drawn []geom2d.Cloud
	for _, cloud := range groups[1:] {
		reflected := geom2d.Reflect(cloud, p0, p1)
		printClouds(cloud, reflected)
		drawn = append(drawn, cloud, reflected)
	}

	path := *out
	if path == "" && *cat {
		path = "/tmp/geom2d_clouds.png"
	}
	if path == "" {
		return
	}
	if err := geom2d.DrawClouds(path, *scale, p0, p1, drawn...); err != nil {
		kingpin.Fatalf("%v", err)
	}
	if *cat {
		imgcat.CatFile(path, os.Stdout)
	}
}

func printClouds(cloud, reflected geom2d.Cloud) {
	if *verbose {
		// A cloud is named by its first point, since slices can't be
		// memo keys.
		fmt.Printf("cloud %s (%d points):\n", dbg.Name(cloud[0]), len(cloud))
	}
	for i, p := range cloud {
		fmt.Printf("%v -> %v\n", aurora.Cyan(p), aurora.Green(reflected[i]))
	}
}

func readGroups(in *os.File) ([]geom2d.Cloud, error) {
	groups := []geom2d.Cloud{}
	// Scan lines
	scanner := bufio.NewScanner(in)
	points := geom2d.Cloud{}
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()

		// If it's empty, and we collected any points, this is the end of the group
		if strings.TrimSpace(line) == "" {
			if len(points) > 0 {
				groups = append(groups, points)
				points = geom2d.Cloud{}
			}
			continue
		}

		point, err := parsePoint(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNo)
		}
		points = append(points, point)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	// Handle trailing group if any
	if len(points) > 0 {
		groups = append(groups, points)
	}
	return groups, nil
}

func parsePoint(line string) (*geom2d.Point, error) {
	parts := strings.Fields(line)
	if len(parts) != 2 {
		return nil, errors.Errorf("expected \"x y\", got %q", line)
	}
	x, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid x value %q", parts[0])
	}
	y, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid y value %q", parts[1])
	}
	return geom2d.Pt(x, y), nil
}
