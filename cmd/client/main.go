// Command client is a small command line front end for the car API.
//
//	client -a localhost:8080 -u alice -p secret register
//	client -a localhost:8080 -u alice -p secret cars
//	client -a localhost:8080 -u alice -p secret add Toyota Corolla
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/MKhiriev/go-car-keeper/internal/adapter"
	"github.com/MKhiriev/go-car-keeper/internal/app"
	"github.com/MKhiriev/go-car-keeper/internal/logger"
	"github.com/MKhiriev/go-car-keeper/models"
)

var errUsage = errors.New("usage: client [-a address] [-u username] [-p password] register|login|hello|cars|get ID|add MAKE MODEL|update ID [MAKE] [MODEL]|delete ID")

func main() {
	log := logger.NewLogger("go-car-client")

	if err := run(context.Background(), os.Args[1:], os.Stdout, log); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

func run(ctx context.Context, args []string, out io.Writer, log *logger.Logger) error {
	fs := flag.NewFlagSet("client", flag.ContinueOnError)
	address := fs.String("a", "localhost:8080", "server address")
	username := fs.String("u", os.Getenv("CAR_KEEPER_USERNAME"), "username")
	password := fs.String("p", os.Getenv("CAR_KEEPER_PASSWORD"), "password")
	timeout := fs.Duration("t", 15*time.Second, "request timeout")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		return errUsage
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(*address, *timeout, log)
	if err != nil {
		return err
	}

	credentials := models.Credentials{Username: *username, Password: *password}
	command, params := fs.Arg(0), fs.Args()[1:]

	if command == "register" {
		if err = serverAdapter.Register(ctx, credentials); err != nil {
			return err
		}
		fmt.Fprintln(out, app.MsgUserRegistered)
		return nil
	}

	token, err := serverAdapter.Login(ctx, credentials)
	if err != nil {
		return err
	}

	var result any
	switch command {
	case "login":
		result = token
	case "hello":
		result, err = serverAdapter.Hello(ctx)
	case "cars":
		result, err = serverAdapter.GetAllCars(ctx)
	case "get":
		var id int64
		if id, err = carID(params); err == nil {
			result, err = serverAdapter.GetCarByID(ctx, id)
		}
	case "add":
		if len(params) != 2 {
			return errUsage
		}
		result, err = serverAdapter.AddCars(ctx, []models.Car{{Make: params[0], Model: params[1]}})
	case "update":
		var id int64
		if id, err = carID(params); err == nil {
			update := models.CarUpdate{ID: id}
			if len(params) > 1 {
				update.Make = &params[1]
			}
			if len(params) > 2 {
				update.Model = &params[2]
			}
			result, err = serverAdapter.UpdateCar(ctx, update)
		}
	case "delete":
		var id int64
		if id, err = carID(params); err == nil {
			err = serverAdapter.DeleteCar(ctx, id)
			result = app.MsgCarDeleted
		}
	default:
		return errUsage
	}
	if err != nil {
		return err
	}

	return printResult(out, result)
}

func carID(params []string) (int64, error) {
	if len(params) == 0 {
		return 0, errUsage
	}
	id, err := strconv.ParseInt(params[0], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid car id %q: %w", params[0], err)
	}
	return id, nil
}

func printResult(out io.Writer, result any) error {
	if s, ok := result.(string); ok {
		_, err := fmt.Fprintln(out, s)
		return err
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}
