package roster

import (
	"bufio"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/valyala/fasthttp"
)

// GET /api/admin/roster/stream (SSE)
// Korumalı Admin bölümünün tek veri kaynağı: bağlanınca mevcut snapshot,
// sonrasında her onaylanmış değişiklikte yeni tam snapshot gönderilir.
// Bağlantı başına tek abonelik açılır ve istemci koptuğunda kapatılır.
func StreamHandler(hub *Hub) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Set("Content-Type", "text/event-stream")
		c.Set("Cache-Control", "no-cache")
		c.Set("Connection", "keep-alive")

		c.Context().SetBodyStreamWriter(fasthttp.StreamWriter(func(w *bufio.Writer) {
			// Yavaş istemcide eski snapshot'lar düşer; sonraki event
			// zaten koleksiyonun tam halidir
			snapshots := make(chan []Doc, 8)
			cancel := hub.Subscribe(func(snap []Doc) {
				select {
				case snapshots <- snap:
				default:
				}
			})
			defer cancel()

			if snap, err := Snapshot(); err != nil {
				log.Printf("[WARN] açılış snapshot'ı alınamadı: %v", err)
			} else if writeEvent(w, snap) != nil {
				return
			}

			// Keepalive, kopan bağlantının bir sonraki mutasyonu
			// beklemeden fark edilmesini sağlar
			ticker := time.NewTicker(30 * time.Second)
			defer ticker.Stop()

			for {
				select {
				case snap := <-snapshots:
					if writeEvent(w, snap) != nil {
						return
					}
				case <-ticker.C:
					if _, err := fmt.Fprint(w, ": ping\n\n"); err != nil {
						return
					}
					if err := w.Flush(); err != nil {
						return
					}
				}
			}
		}))

		return nil
	}
}

func writeEvent(w *bufio.Writer, snap []Doc) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "data: %s\n\n", data); err != nil {
		return err
	}
	return w.Flush()
}
