package notifications

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/nats-io/nats-server/v2/server"
	natsserver "github.com/nats-io/nats-server/v2/test"
	"github.com/nats-io/nats.go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daireto/phishing-url-detector/internal/messagebus"
	"github.com/daireto/phishing-url-detector/internal/models"
)

func setupNats(t *testing.T, port int) (*nats.Conn, *server.Server) {
	opts := natsserver.DefaultTestOptions
	opts.Port = port
	server := natsserver.RunServer(&opts)

	nc, err := nats.Connect("nats://127.0.0.1:" + strconv.Itoa(port))
	require.NoError(t, err, "Should connect to NATS")
	return nc, server
}

func setupWs(hub *Hub) *httptest.Server {
	handler := NewHandler(hub, slog.New(slog.DiscardHandler))
	wsServer := httptest.NewServer(http.HandlerFunc(handler.HandleWebSocket))
	return wsServer
}

func setupIntegration(t *testing.T) (*messagebus.MessageBus, string, func()) {
	nc, server := setupNats(t, 8400)

	hub := NewHub(WithHubLogger(slog.New(slog.DiscardHandler)))
	wsServer := setupWs(hub)
	mb := messagebus.New(nc, nil)

	svc := NewNotificationService(
		hub,
		mb,
		WithLogger(slog.New(slog.DiscardHandler)),
	)

	svc.Start(context.Background())

	shutdown := func() {
		svc.Stop()
		server.Shutdown()
		nc.Close()
		wsServer.Close()
	}

	wsURL := "ws" + strings.TrimPrefix(wsServer.URL, "http")
	return mb, wsURL, shutdown
}

func TestNotificationService_ScanUpdateBroadcast_Integration(t *testing.T) {
	mb, wsURL, shutdown := setupIntegration(t)
	defer shutdown()

	time.Sleep(200 * time.Millisecond)

	var clients []*websocket.Conn

	for i := 0; i < 3; i++ {
		conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
		require.NoError(t, err, "Should connect WebSocket client %d", i+1)
		clients = append(clients, conn)
	}

	defer func() {
		for _, client := range clients {
			client.Close()
		}
	}()

	time.Sleep(100 * time.Millisecond)

	// Publish scan update through NATS
	scanMsg := messagebus.ScanUpdateMessage{
		Type:   messagebus.ScanUpdateMessageType,
		ScanID: "integration-scan-123",
		Status: string(models.ScanStatusCompleted),
		Result: &models.Prediction{
			URL:      "https://integration-test.example.com",
			Phishing: true,
			Score:    0.93,
			Features: map[string]float64{"no_dns_record": 1},
		},
	}

	err := mb.PublishScanUpdate(context.Background(), scanMsg)
	require.NoError(t, err, "Should publish scan update")

	time.Sleep(300 * time.Millisecond)

	// Verify all clients received the scan update
	for i, client := range clients {
		client.SetReadDeadline(time.Now().Add(3 * time.Second))
		_, msgData, err := client.ReadMessage()
		require.NoError(t, err, "Client %d should receive scan update message", i+1)

		var received messagebus.ScanUpdateMessage
		err = json.Unmarshal(msgData, &received)
		require.NoError(t, err, "Should unmarshal scan update for client %d", i+1)

		assert.Equal(t, scanMsg.Type, received.Type, "Message type should match for client %d", i+1)
		assert.Equal(t, scanMsg.ScanID, received.ScanID, "Scan ID should match for client %d", i+1)
		assert.Equal(t, scanMsg.Status, received.Status, "Status should match for client %d", i+1)
		require.NotNil(t, received.Result, "Result should be present for client %d", i+1)
		assert.Equal(t, scanMsg.Result.URL, received.Result.URL, "Result URL should match for client %d", i+1)
		assert.True(t, received.Result.Phishing, "Verdict should survive the round trip for client %d", i+1)
	}
}

func TestNotificationService_StageUpdateSubscription_Integration(t *testing.T) {
	mb, wsURL, shutdown := setupIntegration(t)
	defer shutdown()

	time.Sleep(200 * time.Millisecond)

	var clients []*websocket.Conn

	for i := 0; i < 3; i++ {
		conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
		require.NoError(t, err, "Should connect WebSocket client %d", i+1)
		clients = append(clients, conn)
	}

	defer func() {
		for _, client := range clients {
			client.Close()
		}
	}()

	time.Sleep(100 * time.Millisecond)

	// Subscribe first 2 clients to the target scan
	subMsg := SubscriptionMessage{Action: "subscribe", ScanID: "target-scan-456"}
	msgData, err := json.Marshal(subMsg)
	require.NoError(t, err, "Should marshal subscription message")

	for i := 0; i < 2; i++ {
		err = clients[i].WriteMessage(websocket.TextMessage, msgData)
		require.NoError(t, err, "Should send subscription for client %d", i+1)
	}

	// Client 3 remains unsubscribed
	time.Sleep(100 * time.Millisecond)

	// Publish stage update for the target scan
	stageMsg := messagebus.StageUpdateMessage{
		Type:      messagebus.StageUpdateMessageType,
		ScanID:    "target-scan-456",
		StageType: string(models.StageTypeResolvingDomain),
		Status:    string(models.StageStatusRunning),
	}

	err = mb.PublishStageUpdate(context.Background(), stageMsg)
	require.NoError(t, err, "Should publish stage update")

	time.Sleep(300 * time.Millisecond)

	// Verify first 2 clients received the message (subscribed)
	for i := 0; i < 2; i++ {
		clients[i].SetReadDeadline(time.Now().Add(3 * time.Second))
		_, msgData, err := clients[i].ReadMessage()
		require.NoError(t, err, "Subscribed client %d should receive stage update", i+1)

		var received messagebus.StageUpdateMessage
		err = json.Unmarshal(msgData, &received)
		require.NoError(t, err, "Should unmarshal stage update for client %d", i+1)

		assert.Equal(t, stageMsg.Type, received.Type, "Message type should match for client %d", i+1)
		assert.Equal(t, stageMsg.ScanID, received.ScanID, "Scan ID should match for client %d", i+1)
		assert.Equal(t, stageMsg.StageType, received.StageType, "Stage type should match for client %d", i+1)
		assert.Equal(t, stageMsg.Status, received.Status, "Status should match for client %d", i+1)
	}

	// Third client should NOT receive the message (unsubscribed)
	clients[2].SetReadDeadline(time.Now().Add(500 * time.Millisecond))
	_, _, err = clients[2].ReadMessage()
	assert.Error(t, err, "Unsubscribed client should not receive scan-specific message")
}

func TestNotificationService_ConcurrentClients_Integration(t *testing.T) {
	mb, wsURL, shutdown := setupIntegration(t)
	defer shutdown()

	time.Sleep(200 * time.Millisecond)

	// Connect 5 concurrent clients
	const clientCount = 5
	var clients []*websocket.Conn

	for i := 0; i < clientCount; i++ {
		conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
		require.NoError(t, err, "Should connect WebSocket client %d", i+1)
		clients = append(clients, conn)
	}

	defer func() {
		for _, client := range clients {
			client.Close()
		}
	}()

	time.Sleep(200 * time.Millisecond)

	// Subscribe half the clients to a specific scan
	subMsg := SubscriptionMessage{Action: "subscribe", ScanID: "concurrent-test-scan"}
	msgData, err := json.Marshal(subMsg)
	require.NoError(t, err, "Should marshal subscription message")

	subscribedCount := clientCount / 2
	for i := 0; i < subscribedCount; i++ {
		err = clients[i].WriteMessage(websocket.TextMessage, msgData)
		require.NoError(t, err, "Should subscribe client %d", i+1)
	}

	time.Sleep(100 * time.Millisecond)

	// Publish a global scan update (should reach all clients)
	globalMsg := messagebus.ScanUpdateMessage{
		Type:   messagebus.ScanUpdateMessageType,
		ScanID: "global-concurrent-scan",
		Status: string(models.ScanStatusRunning),
	}

	err = mb.PublishScanUpdate(context.Background(), globalMsg)
	require.NoError(t, err, "Should publish global scan update")

	time.Sleep(300 * time.Millisecond)

	// Verify all clients received the global message
	globalReceivedCount := 0
	for _, client := range clients {
		client.SetReadDeadline(time.Now().Add(time.Second))
		_, msgData, err := client.ReadMessage()
		if err == nil {
			var received messagebus.ScanUpdateMessage
			if json.Unmarshal(msgData, &received) == nil && received.ScanID == "global-concurrent-scan" {
				globalReceivedCount++
			}
		}
	}

	assert.Equal(t, clientCount, globalReceivedCount, "All clients should receive global broadcast")

	// Publish a scan-specific stage update (should reach only subscribed clients)
	stageMsg := messagebus.StageUpdateMessage{
		Type:      messagebus.StageUpdateMessageType,
		ScanID:    "concurrent-test-scan",
		StageType: string(models.StageTypeFetchingContent),
		Status:    string(models.StageStatusRunning),
	}

	err = mb.PublishStageUpdate(context.Background(), stageMsg)
	require.NoError(t, err, "Should publish stage update")

	time.Sleep(300 * time.Millisecond)

	// Verify only subscribed clients received the stage message
	stageReceivedCount := 0
	for i, client := range clients {
		client.SetReadDeadline(time.Now().Add(500 * time.Millisecond))
		_, msgData, err := client.ReadMessage()
		if err == nil {
			var received messagebus.StageUpdateMessage
			if json.Unmarshal(msgData, &received) == nil && received.ScanID == "concurrent-test-scan" {
				stageReceivedCount++
				assert.True(t, i < subscribedCount, "Only subscribed clients should receive stage message")
			}
		}
	}

	assert.Equal(t, subscribedCount, stageReceivedCount, "Only subscribed clients should receive stage message")
}

func TestNotificationService_SubscriptionLifecycle_Integration(t *testing.T) {
	mb, wsURL, shutdown := setupIntegration(t)
	defer shutdown()

	time.Sleep(200 * time.Millisecond)

	// Create client and subscribe
	client, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err, "Should connect WebSocket client")
	defer client.Close()

	subMsg := SubscriptionMessage{Action: "subscribe", ScanID: "lifecycle-scan-456"}
	msgData, err := json.Marshal(subMsg)
	require.NoError(t, err, "Should marshal subscription message")

	err = client.WriteMessage(websocket.TextMessage, msgData)
	require.NoError(t, err, "Should subscribe client")

	time.Sleep(200 * time.Millisecond)

	// Publish first message - client should receive
	stageMsg1 := messagebus.StageUpdateMessage{
		Type:      messagebus.StageUpdateMessageType,
		ScanID:    "lifecycle-scan-456",
		StageType: string(models.StageTypeExtractingLexical),
		Status:    string(models.StageStatusRunning),
	}

	err = mb.PublishStageUpdate(context.Background(), stageMsg1)
	require.NoError(t, err, "Should publish first stage update")

	time.Sleep(300 * time.Millisecond)

	// Verify client received the message
	client.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, receivedData, err := client.ReadMessage()
	require.NoError(t, err, "Client should receive stage update while subscribed")

	var received messagebus.StageUpdateMessage
	err = json.Unmarshal(receivedData, &received)
	require.NoError(t, err, "Should unmarshal stage update")

	assert.Equal(t, stageMsg1.ScanID, received.ScanID, "Message scan ID should match")
	assert.Equal(t, stageMsg1.StageType, received.StageType, "Message stage type should match")

	// Unsubscribe from the scan
	unsubMsg := SubscriptionMessage{Action: "unsubscribe", ScanID: "lifecycle-scan-456"}
	unsubData, err := json.Marshal(unsubMsg)
	require.NoError(t, err, "Should marshal unsubscription message")

	err = client.WriteMessage(websocket.TextMessage, unsubData)
	require.NoError(t, err, "Should unsubscribe client")

	time.Sleep(200 * time.Millisecond)

	// Publish another message - client should NOT receive
	stageMsg2 := messagebus.StageUpdateMessage{
		Type:      messagebus.StageUpdateMessageType,
		ScanID:    "lifecycle-scan-456",
		StageType: string(models.StageTypeClassifying),
		Status:    string(models.StageStatusCompleted),
	}

	err = mb.PublishStageUpdate(context.Background(), stageMsg2)
	require.NoError(t, err, "Should publish second stage update")

	time.Sleep(300 * time.Millisecond)

	// Verify client did NOT receive the second message
	client.SetReadDeadline(time.Now().Add(500 * time.Millisecond))
	_, _, err = client.ReadMessage()
	assert.Error(t, err, "Client should not receive message after unsubscribing")
}
