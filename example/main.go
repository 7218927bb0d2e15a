package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	drivefolder "github.com/okineko/go-drivefolder"
	"github.com/okineko/go-drivefolder/auth"
)

func main() {
	ctx := context.Background()

	service, err := auth.NewDriveService(ctx, auth.Config{
		CredentialsFile: os.Getenv("GDRIVE_CREDENTIALS_FILE"),
	})
	if err != nil {
		log.Fatal(err)
	}

	manager := drivefolder.NewFromService(service)
	scope := drivefolder.Scope{FolderID: os.Getenv("OUTPUT_FOLDER_ID")}

	// Upload a couple of pipeline outputs.
	uploader := drivefolder.NewUploader(drivefolder.NewDriveGateway(service),
		drivefolder.WithProperties(map[string]string{"pipeline": "example"}))
	for _, name := range []string{"test_1.txt", "test_2.txt"} {
		rec, err := uploader.Upload(ctx, name, strings.NewReader("content for "+name), scope)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("uploaded %s (ID: %s)\n", rec.Name, rec.ID)
	}

	// List what the folder now contains.
	records, err := manager.ListFiles(ctx, scope, drivefolder.Filter{}, 0)
	if err != nil {
		log.Fatal(err)
	}
	for _, rec := range records {
		fmt.Printf("%s (ID: %s, %d bytes)\n", rec.Name, rec.ID, rec.Size)
	}

	// Check for one file by exact name.
	exists, err := manager.FileExists(ctx, "test_1.txt", scope)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("test_1.txt exists: %v\n", exists)

	// Clean up everything the example uploaded.
	report, err := manager.DeleteByPrefix(ctx, scope, "test_")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("deleted %d files, %d failures\n", len(report.SucceededIDs), len(report.Failed))
	for _, item := range report.Failed {
		fmt.Printf("failed: %s (%s): %s\n", item.Name, item.ID, item.Reason)
	}
}
