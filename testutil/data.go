package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// ModernHeader is the snake_case trip-data header (2021+ exports).
const ModernHeader = "ride_id,rideable_type,started_at,ended_at," +
	"start_station_name,start_station_id,end_station_name,end_station_id," +
	"start_lat,start_lng,end_lat,end_lng,member_casual"

// ModernRows are data rows matching ModernHeader.
var ModernRows = []string{
	"A1,classic_bike,2021-01-01 08:00:00.500,2021-01-01 08:10:00,Central Park,101,Times Sq,202,40.7678,-73.9718,40.7580,-73.9855,member",
	"A2,electric_bike,2021-01-01 09:00:00,2021-01-01 09:05:00,Times Sq,202,Union Sq,303,40.7580,-73.9855,40.7359,-73.9911,casual",
	"A3,classic_bike,2021-01-02 10:30:00.250,2021-01-02 10:45:00,Union Sq,303,Central Park,101,40.7359,-73.9911,40.7678,-73.9718,member",
	"A4,docked_bike,2021-01-03 07:15:00,2021-01-03 07:40:00,Central Park,101,Union Sq,303,40.7678,-73.9718,40.7359,-73.9911,casual",
}

// LegacyHeader is the spaced trip-data header (pre-2021 exports).
const LegacyHeader = "tripduration,starttime,stoptime," +
	"start station id,start station name,start station latitude,start station longitude," +
	"end station id,end station name,end station latitude,end station longitude," +
	"bikeid,usertype,birth year,gender"

// LegacyRows are data rows matching LegacyHeader.
var LegacyRows = []string{
	"600,2020-06-01 08:00:00,2020-06-01 08:10:00,101,Central Park,40.7678,-73.9718,202,Times Sq,40.7580,-73.9855,15001,Subscriber,1985,1",
	"300,2020-06-01 09:00:00.500,2020-06-01 09:05:00,202,Times Sq,40.7580,-73.9855,303,Union Sq,40.7359,-73.9911,15002,Customer,1992,2",
}

// WriteFile writes content to dir/name, creating parents, and returns the path.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

// WriteCSV writes a header-first CSV file from a header line and data rows.
func WriteCSV(t *testing.T, dir, name, header string, rows []string) string {
	t.Helper()
	lines := append([]string{header}, rows...)
	return WriteFile(t, dir, name, strings.Join(lines, "\n")+"\n")
}

// MkDir creates dir/name and returns its path. Useful for empty directories
// that a directory-skipping test needs to exist on disk.
func MkDir(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(path, 0755); err != nil {
		t.Fatalf("mkdir %s: %v", path, err)
	}
	return path
}
