/**
 * Copyright 2025-present Coinbase Global, Inc.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *  http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Server struct {
	addr    string
	engine  *gin.Engine
	srv     *http.Server
	handler *Handler
}

func NewServer(addr string, h *Handler) *Server {
	engine := gin.New()
	engine.Use(RequestID(), RequestLogger(), gin.Recovery())

	s := &Server{
		addr:    addr,
		engine:  engine,
		handler: h,
	}
	s.registerRoutes()

	return s
}

func (s *Server) registerRoutes() {
	s.engine.GET("/", s.handler.Root)
	s.engine.GET("/health", s.handler.Health)

	accounts := s.engine.Group("/accounts")
	accounts.GET("/:number/balance", s.handler.GetBalance)
	accounts.POST("/:number/deposit", s.handler.Deposit)
	accounts.POST("/:number/withdraw", s.handler.Withdraw)
}

func (s *Server) Run() error {
	s.srv = &http.Server{
		Addr:    s.addr,
		Handler: s.engine,
	}
	return s.srv.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.srv == nil {
		return nil
	}
	return s.srv.Shutdown(ctx)
}
