// chatbot-cli is a line-oriented front end for the chat relay. It owns
// one conversation: type to chat, /persona to switch modes, /attach to
// send a file with the next message, /voice to dictate.
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/Himanshu-coder007/Ai-Chatbot/internal/adapters/gateway"
	"github.com/Himanshu-coder007/Ai-Chatbot/internal/adapters/storage/memory"
	"github.com/Himanshu-coder007/Ai-Chatbot/internal/app/conversation"
	"github.com/Himanshu-coder007/Ai-Chatbot/internal/config"
	"github.com/Himanshu-coder007/Ai-Chatbot/internal/domain"
	"github.com/Himanshu-coder007/Ai-Chatbot/internal/persona"
	"github.com/Himanshu-coder007/Ai-Chatbot/internal/voice"
)

func main() {
	cfg := config.Load()

	client := gateway.NewClient(cfg.GatewayURL, nil)
	store := memory.NewTurnStore()
	controller := conversation.New(client, store)

	// No capture device is wired on this platform; /voice degrades to a
	// notice, text input keeps working.
	var recognizer voice.Recognizer = voice.Unsupported{}
	buffer := &voice.Buffer{}

	fmt.Println("Connected to", cfg.GatewayURL)
	fmt.Println("Commands: /persona <id>, /personas, /attach <path>, /voice, /history, /quit")

	ctx := context.Background()
	scanner := bufio.NewScanner(os.Stdin)
	var attachment *domain.AttachmentPayload

	for prompt(controller); scanner.Scan(); prompt(controller) {
		line := strings.TrimSpace(scanner.Text())

		switch {
		case line == "/quit":
			return

		case line == "/personas":
			for _, p := range persona.All() {
				fmt.Printf("  %-14s %s - %s\n", p.ID, p.DisplayName, p.Description)
			}

		case strings.HasPrefix(line, "/persona"):
			id := strings.TrimSpace(strings.TrimPrefix(line, "/persona"))
			p, err := controller.SwitchPersona(ctx, id)
			if err != nil {
				log.Println("persona switch:", err)
				continue
			}
			fmt.Printf("Switched to %s mode. How can I help you?\n", p.DisplayName)

		case strings.HasPrefix(line, "/attach"):
			path := strings.TrimSpace(strings.TrimPrefix(line, "/attach"))
			payload, err := loadAttachment(path)
			if err != nil {
				fmt.Println("attach:", err)
				continue
			}
			attachment = payload
			fmt.Printf("Attached %s (%d bytes); it will ride with your next message.\n",
				payload.Name, len(payload.Data))

		case line == "/voice":
			if err := buffer.Capture(ctx, recognizer); err != nil {
				if errors.Is(err, voice.ErrUnavailable) {
					fmt.Println("Voice input is not supported here; please type instead.")
				} else {
					fmt.Println("voice:", err)
				}
				continue
			}
			if notice := buffer.Notice(); notice != "" {
				fmt.Println("voice:", notice)
			}
			if text := buffer.Text(); text != "" {
				fmt.Println("Heard:", text)
			}

		case line == "/history":
			turns, err := controller.Turns()
			if err != nil {
				log.Println("history:", err)
				continue
			}
			for _, t := range turns {
				printTurn(t)
			}

		default:
			buffer.Append(line)
			text := buffer.Take()

			err := controller.Submit(ctx, text, attachment)
			switch {
			case errors.Is(err, conversation.ErrEmptySubmission),
				errors.Is(err, conversation.ErrBusy):
				// Silent no-op per the submission rules.
				continue
			case err != nil:
				log.Println("submit:", err)
				continue
			}
			attachment = nil

			turns, err := controller.Turns()
			if err != nil {
				log.Println("history:", err)
				continue
			}
			if len(turns) > 0 {
				printTurn(turns[len(turns)-1])
			}
		}
	}
}

func prompt(c *conversation.Controller) {
	fmt.Printf("[%s] > ", c.ActivePersona().DisplayName)
}

func printTurn(t *domain.Turn) {
	switch {
	case t.Failed:
		fmt.Println("! ", t.Content)
	case t.Speaker == domain.SpeakerUser:
		fmt.Println("You:", t.Content)
	case t.Speaker == domain.SpeakerSystem:
		fmt.Println("--", t.Content)
	default:
		name := persona.Resolve(t.Persona).DisplayName
		fmt.Printf("%s: %s\n", name, t.Content)
	}
}

func loadAttachment(path string) (*domain.AttachmentPayload, error) {
	if path == "" {
		return nil, errors.New("usage: /attach <path>")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	mimeType := mime.TypeByExtension(filepath.Ext(path))
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}

	payload := &domain.AttachmentPayload{
		Name:     filepath.Base(path),
		MIMEType: mimeType,
		Data:     data,
	}

	// Reject oversized or disallowed files here, before submission.
	if err := gateway.ValidateAttachment(payload); err != nil {
		return nil, err
	}
	return payload, nil
}
