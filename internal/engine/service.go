package engine

import (
	"context"

	"tactics-server/internal/domain"
	"tactics-server/internal/engine/handlers"
	"tactics-server/internal/engine/handlers/actions"
	"tactics-server/internal/network"
	"tactics-server/internal/systems"
	"tactics-server/pkg/api"
	"tactics-server/pkg/logger"

	"github.com/looplab/fsm"
	"github.com/zyedidia/generic/mapset"
)

// GameService - контроллер хода. Владеет сеткой, отрядами, выбором
// и машиной фаз. Все мутации состояния происходят синхронно в ответ
// на дискретную команду; фоновых вычислений нет, поэтому блокировки
// внутри симуляции не нужны - корректность держится на строгом
// порядке фаз.
type GameService struct {
	Grid       *domain.Grid
	Friendlies []*domain.Unit
	Hostiles   []*domain.Unit
	GridEvents []domain.GridEvent

	// selected - индекс выбранного юнита в Friendlies (-1, если отряд пуст).
	// Ровно один юнит выбран в любой момент фазы игрока.
	selected int

	// actions - текущий набор легальных действий выбранного юнита.
	// Пересчитывается при каждом выборе и после каждой траты очков.
	actions []domain.UnitAction

	// highlight - множество подсвеченных клеток для быстрой проверки
	// "кликнули ли по доступному действию"
	highlight mapset.Set[domain.Position]

	phase *fsm.FSM
	tick  int

	Logs []api.LogEntry

	CommandChan chan domain.InternalCommand
	Hub         *network.Broadcaster

	handlers map[domain.ActionType]handlers.HandlerFunc
	cfg      Config
}

// NewService строит мир из слоя объектов карты и предиката местности.
// Ошибка здесь фатальна для уровня (нет pc-spawn, битые координаты).
func NewService(cfg Config, width, height int, terrain func(x, y int) bool, records []domain.SpawnRecord) (*GameService, error) {
	grid, friendlies, hostiles, events, err := buildWorld(width, height, terrain, records)
	if err != nil {
		return nil, err
	}

	s := &GameService{
		Grid:        grid,
		Friendlies:  friendlies,
		Hostiles:    hostiles,
		GridEvents:  events,
		highlight:   mapset.New[domain.Position](),
		phase:       newPhaseFSM(),
		CommandChan: make(chan domain.InternalCommand, cfg.CommandBuffer),
		Hub:         network.NewBroadcaster(),
		handlers:    make(map[domain.ActionType]handlers.HandlerFunc),
		cfg:         cfg,
	}

	s.registerHandlers()
	s.SelectPlayer(0)
	return s, nil
}

func (s *GameService) registerHandlers() {
	s.handlers[domain.ActionSelect] = handlers.WithPayload(actions.HandleSelect)
	s.handlers[domain.ActionClick] = handlers.WithPayload(actions.HandleClick)
	s.handlers[domain.ActionEndTurn] = handlers.WithEmptyPayload(actions.HandleEndTurn)
	s.handlers[domain.ActionInit] = handlers.WithEmptyPayload(actions.HandleInit)
}

// Start запускает цикл обработки команд. Канал сериализует ввод:
// каждая команда отрабатывает до конца прежде, чем возьмется следующая.
func (s *GameService) Start() {
	go func() {
		for cmd := range s.CommandChan {
			s.executeCommand(cmd)
		}
	}()
}

// ProcessCommand принимает команду от внешнего мира (WebSocket)
func (s *GameService) ProcessCommand(externalCmd api.ClientCommand) {
	actionType := domain.ParseAction(externalCmd.Action)
	if actionType == domain.ActionUnknown {
		logger.Log.WithField("action", externalCmd.Action).Warn("Unknown action")
		return
	}

	s.CommandChan <- domain.InternalCommand{
		Action:  actionType,
		Token:   externalCmd.Token,
		Payload: externalCmd.Payload,
	}
}

func (s *GameService) executeCommand(cmd domain.InternalCommand) {
	handler, ok := s.handlers[cmd.Action]
	if !ok {
		logger.Log.WithField("action", cmd.Action.String()).Warn("No handler registered")
		return
	}

	res, err := handler(handlers.Context{Game: s}, cmd.Payload)
	if err != nil {
		logger.Log.WithField("action", cmd.Action.String()).WithError(err).Warn("Command rejected")
		return
	}
	if res.Msg != "" {
		s.AddLog(res.Msg, res.MsgType)
	}

	// После каждой команды рассылаем свежий снимок
	s.Hub.Broadcast(s.buildSnapshot())
}

// --- ОПЕРАЦИИ КОНТРОЛЛЕРА ХОДА ---

// SelectPlayer выбирает юнита отряда и пересчитывает его действия.
// Индекс вне ростера отбрасывается (выбор не меняется); пустой ростер
// сбрасывает выбор.
func (s *GameService) SelectPlayer(index int) {
	if len(s.Friendlies) == 0 {
		s.selected = -1
		s.actions = nil
		s.highlight = mapset.New[domain.Position]()
		return
	}
	if index < 0 || index >= len(s.Friendlies) {
		if s.selected >= 0 && s.selected < len(s.Friendlies) {
			return
		}
		index = 0
	}

	s.selected = index
	s.refreshActions()

	s.Hub.Broadcast(api.ServerNotice{
		Type:     api.NoticeSelection,
		Selected: s.selected,
		UnitID:   s.Friendlies[s.selected].ID,
	})
	s.notifyHighlight()
}

// refreshActions пересчитывает набор действий и множество подсветки
func (s *GameService) refreshActions() {
	s.actions = systems.UnitActions(s.Grid, s.Friendlies[s.selected])
	s.highlight = mapset.New[domain.Position]()
	for _, a := range s.actions {
		s.highlight.Put(a.Pos)
	}
}

// notifyHighlight шлет клетки действий презентации, отдельно по видам
func (s *GameService) notifyHighlight() {
	byKind := map[domain.UnitActionKind][]api.CellView{}
	for _, a := range s.actions {
		byKind[a.Kind] = append(byKind[a.Kind], api.CellView{X: a.Pos.X, Y: a.Pos.Y})
	}
	for _, kind := range []domain.UnitActionKind{domain.UnitActionMove, domain.UnitActionAttack} {
		cells := byKind[kind]
		if len(cells) == 0 {
			continue
		}
		s.Hub.Broadcast(api.ServerNotice{
			Type:  api.NoticeHighlight,
			Kind:  kind.String(),
			Cells: cells,
		})
	}
}

// HandleClick разрешает клик по клетке в действие.
//
// Приоритет у выбора: клик по своему юниту только выбирает его,
// одновременно выбрать и сходить одним кликом нельзя. Клик мимо
// выбора и мимо действий - no-op: случайный клик без последствий.
func (s *GameService) HandleClick(x, y int) {
	if !s.phase.Is(PhasePlayer) {
		return // ввод принимается только в фазу игрока
	}

	for i, u := range s.Friendlies {
		if u.Pos.X == x && u.Pos.Y == y {
			s.SelectPlayer(i)
			return
		}
	}

	pos := domain.Position{X: x, Y: y}
	if !s.highlight.Has(pos) {
		return
	}
	for _, a := range s.actions {
		if a.Pos == pos {
			s.performAction(a)
			return
		}
	}
}

// performAction исполняет заранее сгенерированное действие.
// Легальность уже гарантирована генератором, примитивы ее не перепроверяют.
func (s *GameService) performAction(a domain.UnitAction) {
	actor := s.SelectedPlayer()
	if actor == nil {
		return
	}

	switch a.Kind {
	case domain.UnitActionMove:
		dest := s.Grid.Cell(a.Pos.X, a.Pos.Y)
		if s.Grid.MoveImmediate(actor, dest) {
			s.notifyMoved(actor)
			// События проверяются по НОВОЙ позиции юнита
			s.fireGridEvents(actor)
		}

	case domain.UnitActionAttack:
		msg, died := systems.ApplyAttack(actor, a.Target)
		if msg != "" {
			s.AddLog(msg, "COMBAT")
		}
		if died {
			s.handleDeath(a.Target)
		}
	}

	// Потраченные очки меняют набор легальных действий - перевыбираем
	s.SelectPlayer(s.selected)
}

// EndTurn - единственный способ запустить фазу AI. Она отрабатывает
// синхронно до конца, затем обе стороны получают свежие очки действия.
func (s *GameService) EndTurn() {
	ctx := context.Background()
	if err := s.phase.Event(ctx, eventEndTurn); err != nil {
		logger.Log.WithError(err).Warn("EndTurn rejected")
		return
	}

	s.runAITurn()

	for _, u := range s.Friendlies {
		if u.Stats != nil {
			u.Stats.NewTurn()
		}
	}
	for _, u := range s.Hostiles {
		if u.Stats != nil {
			u.Stats.NewTurn()
		}
	}

	if err := s.phase.Event(ctx, eventResume); err != nil {
		logger.Log.WithError(err).Error("Failed to resume player phase")
	}

	// Обновляем набор действий текущего выбора
	s.SelectPlayer(s.selected)
}

// GameLoopUpdate - покадровая косметика. Симуляцию не мутирует:
// логическое состояние меняется только командами.
func (s *GameService) GameLoopUpdate() {
	s.tick++
}

// --- ДОСТУП ---

// Phase возвращает текущую фазу хода
func (s *GameService) Phase() string {
	return s.phase.Current()
}

// SelectedPlayerID возвращает индекс выбранного юнита (-1 если отряд пуст)
func (s *GameService) SelectedPlayerID() int {
	return s.selected
}

// SelectedPlayer возвращает выбранного юнита или nil
func (s *GameService) SelectedPlayer() *domain.Unit {
	if s.selected < 0 || s.selected >= len(s.Friendlies) {
		return nil
	}
	return s.Friendlies[s.selected]
}

// UnitActions возвращает легальные действия юнита (для панели UI)
func (s *GameService) UnitActions(u *domain.Unit) []domain.UnitAction {
	return systems.UnitActions(s.Grid, u)
}

// --- СМЕРТЬ ---

// handleDeath выписывает погибшего из клетки и из ростера.
// Для мертвых действия больше не генерируются и целью они не бывают.
func (s *GameService) handleDeath(u *domain.Unit) {
	s.Grid.RemoveUnit(u)

	switch u.Control {
	case domain.ControlFriendly:
		for i, other := range s.Friendlies {
			if other.ID == u.ID {
				s.Friendlies = append(s.Friendlies[:i], s.Friendlies[i+1:]...)
				// Сдвиг ростера не должен молча перекинуть выбор
				if i < s.selected {
					s.selected--
				} else if i == s.selected {
					s.selected = 0
				}
				break
			}
		}
		if len(s.Friendlies) == 0 {
			s.selected = -1
			s.actions = nil
			s.highlight = mapset.New[domain.Position]()
			s.AddLog("Отряд уничтожен.", "INFO")
			s.Hub.Broadcast(api.ServerNotice{
				Type: api.NoticeGameOver,
				Text: "Отряд уничтожен.",
			})
		}
	case domain.ControlHostile:
		for i, other := range s.Hostiles {
			if other.ID == u.ID {
				s.Hostiles = append(s.Hostiles[:i], s.Hostiles[i+1:]...)
				break
			}
		}
	}

	logger.Log.WithField("unit", u.Name).Info("Unit removed from play")
	s.Hub.Broadcast(api.ServerNotice{Type: api.NoticeUnitDied, UnitID: u.ID})
}

// --- УВЕДОМЛЕНИЯ И ЛОГИ ---

func (s *GameService) notifyMoved(u *domain.Unit) {
	s.Hub.Broadcast(api.ServerNotice{
		Type:   api.NoticeUnitMoved,
		UnitID: u.ID,
		Pos:    &api.Position{X: u.Pos.X, Y: u.Pos.Y},
		Facing: u.Facing,
	})
}

func (s *GameService) AddLog(text, logType string) {
	s.Logs = append(s.Logs, newLogEntry(text, logType))
}
