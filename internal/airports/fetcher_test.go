package airports

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-resty/resty/v2"
)

const sampleCSV = `"id","ident","type","name","latitude_deg","longitude_deg","elevation_ft","continent","iso_country","iso_region","municipality","scheduled_service","gps_code","iata_code","local_code","home_link","wikipedia_link","keywords"
3797,"KSLC","large_airport","Salt Lake City International Airport",40.7884,-111.977,4227,"NA","US","US-UT","Salt Lake City","yes","KSLC","SLC","SLC",,,
3751,"KDEN","large_airport","Denver International Airport",39.8561,-104.6737,5431,"NA","US","US-CO","Denver","yes","KDEN","DEN","DEN",,,
6523,"00A","heliport","Total RF Heliport",40.0708,-74.9336,11,"NA","US","US-PA","Bensalem","no","K00A",,"00A",,,
9999,"BAD","small_airport","No Coordinates Field",,,"","NA","US","US-XX","Nowhere","no",,,,,,
`

func TestParseCSV(t *testing.T) {
	idx, err := ParseCSV(strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatalf("Expected parse to succeed, got: %v", err)
	}

	if _, ok := idx.Lookup("KSLC"); !ok {
		t.Error("Expected KSLC indexed via ident")
	}
	if _, ok := idx.Lookup("SLC"); !ok {
		t.Error("Expected SLC indexed via iata_code")
	}
	if _, ok := idx.Lookup("K00A"); !ok {
		t.Error("Expected K00A indexed via gps_code")
	}
	if _, ok := idx.Lookup("00A"); !ok {
		t.Error("Expected 00A indexed via ident")
	}
	if _, ok := idx.Lookup("BAD"); ok {
		t.Error("Expected row without coordinates skipped")
	}

	coords, _ := idx.Lookup("KDEN")
	if coords.Lat != 39.8561 || coords.Lon != -104.6737 {
		t.Errorf("Expected KDEN at (39.8561, -104.6737), got %+v", coords)
	}
}

func TestParseCSVFirstEntryWins(t *testing.T) {
	csv := `"ident","latitude_deg","longitude_deg","gps_code","iata_code"
"KAAA",1.0,2.0,,"XXX"
"KBBB",3.0,4.0,,"XXX"
`
	idx, err := ParseCSV(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("Expected parse to succeed, got: %v", err)
	}
	coords, ok := idx.Lookup("XXX")
	if !ok {
		t.Fatal("Expected XXX indexed")
	}
	if coords.Lat != 1.0 {
		t.Errorf("Expected first XXX entry kept, got lat %v", coords.Lat)
	}
}

func TestParseCSVMissingColumns(t *testing.T) {
	if _, err := ParseCSV(strings.NewReader("\"name\",\"city\"\n\"A\",\"B\"\n")); err == nil {
		t.Error("Expected error for CSV without required columns")
	}
}

func TestFetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/csv")
		w.Write([]byte(sampleCSV))
	}))
	defer server.Close()

	fetcher := NewFetcher(resty.New())
	idx, err := fetcher.Fetch(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("Expected fetch to succeed, got: %v", err)
	}
	if _, ok := idx.Lookup("KSLC"); !ok {
		t.Error("Expected fetched index to contain KSLC")
	}
}

func TestFetchServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	fetcher := NewFetcher(resty.New())
	if _, err := fetcher.Fetch(context.Background(), server.URL); err == nil {
		t.Error("Expected error for 500 response")
	}
}
