package http

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"neoblock/internal/game"
	"neoblock/internal/room"
)

// errorStatus maps domain errors onto HTTP statuses.
func errorStatus(err error) int {
	switch {
	case errors.Is(err, room.ErrRoomNotFound):
		return http.StatusNotFound
	case errors.Is(err, room.ErrRoomFull):
		return http.StatusConflict
	case errors.Is(err, room.ErrRoomNotPlaying),
		errors.Is(err, room.ErrUnknownPreset),
		errors.Is(err, game.ErrInvalidBoardSize),
		errors.Is(err, game.ErrInvalidWallCount),
		errors.Is(err, game.ErrMalformedRecord):
		return http.StatusBadRequest
	case errors.Is(err, room.ErrUnknownPlayer), errors.Is(err, game.ErrNotYourTurn):
		return http.StatusForbidden
	case game.ErrorCode(err) != "":
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func abortWithError(c *gin.Context, err error) {
	body := gin.H{"error": err.Error()}
	if code := game.ErrorCode(err); code != "" {
		body["code"] = code
		body["message"] = game.Advisory(err)
	}
	c.JSON(errorStatus(err), body)
}

// @Summary Create new room
// @Description Open a room and seat the caller as player 0
// @Tags Room
// @Accept json
// @Produce json
// @Param request body http.CreateRoomRequest false "Room settings"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /rooms [post]
func CreateRoomHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateRoomRequest
		if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
			return
		}
		snap, seat, err := rm.CreateRoom(req.PlayerName, room.Settings{
			Preset:    req.Preset,
			BoardSize: req.BoardSize,
			MaxWalls:  req.MaxWalls,
		})
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"roomCode": snap.Code, "playerId": seat.ID, "room": snap})
	}
}

// @Summary Join a room
// @Description Seat the caller as player 1, or give a seated caller their seat back
// @Tags Room
// @Accept json
// @Produce json
// @Param code path string true "Room Code"
// @Param request body http.JoinRoomRequest false "Player info"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Failure 409 {object} map[string]interface{}
// @Router /rooms/{code}/join [post]
func JoinRoomHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req JoinRoomRequest
		if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
			return
		}
		snap, seat, err := rm.JoinRoom(c.Param("code"), req.PlayerName, req.PlayerID)
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"roomCode": snap.Code, "playerId": seat.ID, "room": snap})
	}
}

// @Summary Get room state
// @Tags Room
// @Produce json
// @Param code path string true "Room Code"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /rooms/{code} [get]
func GetRoomHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		rx, ok := rm.Get(c.Param("code"))
		if !ok {
			abortWithError(c, room.ErrRoomNotFound)
			return
		}
		c.JSON(http.StatusOK, gin.H{"room": rx.Snapshot()})
	}
}

// @Summary Move the caller's pawn
// @Description Illegal targets are ignored and reported with applied=false
// @Tags Game
// @Accept json
// @Produce json
// @Param code path string true "Room Code"
// @Param request body http.MoveRequest true "Move data"
// @Success 200 {object} map[string]interface{}
// @Failure 403 {object} map[string]interface{}
// @Router /rooms/{code}/move [post]
func MoveHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req MoveRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
			return
		}
		applied, snap, err := rm.Move(c.Param("code"), req.PlayerID, *req.Row, *req.Col)
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"applied": applied, "room": snap})
	}
}

// @Summary Place a wall
// @Description The turn stays with the caller, who still has to move
// @Tags Game
// @Accept json
// @Produce json
// @Param code path string true "Room Code"
// @Param request body http.WallRequest true "Wall data"
// @Success 200 {object} map[string]interface{}
// @Failure 422 {object} map[string]interface{}
// @Router /rooms/{code}/wall [post]
func WallHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req WallRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
			return
		}
		applied, snap, err := rm.PlaceWall(c.Param("code"), req.PlayerID, *req.Row, *req.Col, game.Orientation(req.Orientation))
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"applied": applied, "room": snap})
	}
}

// @Summary Restart the match
// @Tags Game
// @Accept json
// @Produce json
// @Param code path string true "Room Code"
// @Param request body http.ResetRequest true "Caller"
// @Success 200 {object} map[string]interface{}
// @Router /rooms/{code}/reset [post]
func ResetHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ResetRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
			return
		}
		snap, err := rm.Reset(c.Param("code"), req.PlayerID)
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"room": snap})
	}
}

// @Summary Overwrite the match state
// @Description Resync a room from a client's copy. Rules are not checked; seats keep their owners
// @Tags Game
// @Accept json
// @Produce json
// @Param code path string true "Room Code"
// @Param request body http.ReplaceStateRequest true "Caller and state"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 403 {object} map[string]interface{}
// @Router /rooms/{code}/state [put]
func ReplaceStateHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ReplaceStateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
			return
		}
		snap, err := rm.Replace(c.Param("code"), req.PlayerID, *req.State)
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"room": snap})
	}
}
