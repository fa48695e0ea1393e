package ipc

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"os"
	"sync"

	"log/slog"

	"slugline/internal/api"
	"slugline/internal/daemon"
	"slugline/internal/logging"
)

// Server exposes daemon control via JSON-RPC over a Unix domain socket.
type Server struct {
	path      string
	daemon    *daemon.Daemon
	logger    *slog.Logger
	listener  net.Listener
	rpcServer *rpc.Server

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewServer configures the IPC server at the given socket path.
func NewServer(ctx context.Context, path string, d *daemon.Daemon, logger *slog.Logger) (*Server, error) {
	if d == nil {
		return nil, errors.New("ipc server requires daemon")
	}
	if logger == nil {
		logger = logging.NewNop()
	}

	if err := os.RemoveAll(path); err != nil {
		return nil, fmt.Errorf("remove existing socket: %w", err)
	}

	listener, err := net.Listen("unix", path)
	if err != nil {
		return nil, fmt.Errorf("listen on socket: %w", err)
	}

	rpcServer := rpc.NewServer()
	srv := &service{daemon: d, logger: logging.NewComponentLogger(logger, "ipc"), ctx: ctx}
	if err := rpcServer.RegisterName("Slugline", srv); err != nil {
		listener.Close()
		return nil, fmt.Errorf("register rpc service: %w", err)
	}

	serverCtx, cancel := context.WithCancel(ctx)
	return &Server{
		path:      path,
		daemon:    d,
		logger:    logging.NewComponentLogger(logger, "ipc"),
		listener:  listener,
		rpcServer: rpcServer,
		ctx:       serverCtx,
		cancel:    cancel,
	}, nil
}

// Serve starts accepting RPC connections until the context is canceled.
func (s *Server) Serve() {
	s.logger.Debug("ipc server listening", logging.String("socket", s.path))
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		for {
			conn, err := s.listener.Accept()
			if err != nil {
				select {
				case <-s.ctx.Done():
					return
				default:
				}
				s.logger.Warn("accept failed", logging.Error(err))
				continue
			}
			s.wg.Add(1)
			go func(c net.Conn) {
				defer s.wg.Done()
				s.rpcServer.ServeCodec(jsonrpc.NewServerCodec(c))
			}(conn)
		}
	}()
}

// Close stops the server and removes the socket file.
func (s *Server) Close() {
	s.cancel()
	if s.listener != nil {
		_ = s.listener.Close()
	}
	s.wg.Wait()
	if err := os.RemoveAll(s.path); err != nil {
		s.logger.Warn("failed to remove socket",
			logging.String("socket", s.path),
			logging.Error(err))
	}
}

type service struct {
	daemon *daemon.Daemon
	logger *slog.Logger
	ctx    context.Context
}

func (s *service) Start(_ StartRequest, resp *StartResponse) error {
	s.logger.Debug("daemon start requested")
	if err := s.daemon.Start(s.ctx); err != nil {
		resp.Started = false
		resp.Message = err.Error()
		return nil
	}
	resp.Started = true
	resp.Message = "daemon started"
	s.logger.Info("daemon started via ipc")
	return nil
}

func (s *service) Stop(_ StopRequest, resp *StopResponse) error {
	s.logger.Debug("daemon stop requested")
	s.daemon.Stop()
	resp.Stopped = true
	s.logger.Info("daemon stopped via ipc")
	return nil
}

func (s *service) Status(_ StatusRequest, resp *StatusResponse) error {
	status := s.daemon.Status(s.ctx)
	resp.Running = status.Running
	resp.PID = status.PID
	resp.SocketPath = status.SocketPath
	resp.LockPath = status.LockFilePath
	resp.StartedAt = status.StartedAt
	resp.WorkflowRunning = status.Workflow.Running
	resp.JobCounts = status.Workflow.JobCounts
	resp.StageHealth = status.Workflow.StageHealth
	return nil
}

func (s *service) Submit(req SubmitRequest, resp *SubmitResponse) error {
	view, err := s.daemon.Service().Submit(api.SubmitRequest{
		Text:                req.Text,
		Component:           req.Component,
		Priority:            req.Priority,
		ConfidenceThreshold: req.ConfidenceThreshold,
	})
	if err != nil {
		return err
	}
	resp.Job = view
	s.logger.Info("job submitted via ipc",
		logging.String(logging.FieldJobID, view.ID),
		logging.String("status", view.Status))
	return nil
}

func (s *service) JobGet(req JobGetRequest, resp *JobGetResponse) error {
	view, err := s.daemon.Service().Describe(req.ID)
	if err != nil {
		return err
	}
	if view == nil {
		return fmt.Errorf("job %s not found", req.ID)
	}
	resp.Job = *view
	return nil
}

func (s *service) JobList(_ JobListRequest, resp *JobListResponse) error {
	resp.Jobs = s.daemon.Service().List()
	return nil
}

func (s *service) JobCancel(req JobCancelRequest, resp *JobCancelResponse) error {
	view, err := s.daemon.Service().Cancel(req.ID)
	if err != nil {
		return err
	}
	if view == nil {
		return fmt.Errorf("job %s not found", req.ID)
	}
	resp.Job = *view
	s.logger.Info("job cancelled via ipc", logging.String(logging.FieldJobID, req.ID))
	return nil
}

func (s *service) Stats(_ StatsRequest, resp *StatsResponse) error {
	stats, err := s.daemon.Service().Stats(s.ctx)
	if err != nil {
		return err
	}
	resp.Stats = stats
	return nil
}

func (s *service) SceneQuery(req SceneQueryRequest, resp *SceneQueryResponse) error {
	scenes, err := s.daemon.Service().ScenesByCast(s.ctx, req.Character)
	if err != nil {
		return err
	}
	resp.Character = req.Character
	resp.Scenes = scenes
	return nil
}
